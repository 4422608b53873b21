// Package manifest reads the declaration manifest a host writes for one
// compilation snapshot and turns it into analyze declarations.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - name: Player
//	    namespace: Game.Model
//	    kind: class                 # class | struct | record | record struct | interface
//	    typeParameters: [T]
//	    containers:                 # outermost first
//	      - name: World
//	        kind: struct
//	    location: {file: Player.cs, line: 4, column: 5}
//	    autoProperty:               # generation marker; `true` or a settings block
//	      access: internal
//	      prefix: "^_"
//	      naming: camel
//	    fields:
//	      - name: _health
//	        type: int
//	        getter: true
//	        setter: true
//	      - name: _score
//	        readonly: true
//	        type:
//	          display: global::Props.ReadOnlyProperty<Player, int>
//	          capsule: readonly     # readonly | readwrite
//	          owner: Player
//	          value: int
//	        autoProperty: {access: private}
//
// JSON manifests are accepted since JSON is a subset of YAML.
//
// Types reported by several manifests or several entries (partial
// fragments) are merged by identity in first-seen order. Unrecognised
// enum values fall back to the default and are reported as warnings with
// a suggestion.
package manifest
