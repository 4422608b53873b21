// Package driver runs one generation pass over the declarations a host
// reported: it selects eligible types, resolves them in parallel, renders
// their companion files and relays every diagnostic in declaration order.
package driver
