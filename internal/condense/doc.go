// Package condense reduces parsed documents to bounded line budgets while
// ranking content by value: structural rules first, code examples second,
// prose last. Output is deterministic: identical inputs produce
// byte-identical text, with no dependence on wall-clock time or map
// iteration order.
package condense
