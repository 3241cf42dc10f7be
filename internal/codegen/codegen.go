// codegen is a library that creates TypeScript declaration and expression
// nodes in specific repeatable ways. This library is the common place for
// logic around how new nodes get created, which shorthand inputs the
// builders accept, and where the type-only marker lands on an import or
// export clause. Any function that creates a new node for the output tree
// should be added here. When implementing functions for this library, the
// following rules should apply:
//
// 1. Every call must allocate a fresh node graph. Node objects consumed as
// inputs become part of the output tree and are owned by it afterwards, so
// they must not be passed to a second builder call.
// 2. Please add a comment header about what the output of your function is
// and what it does. All exported functions MUST be documented in a way that
// is compatible with `godoc`.
// 3. Values arriving through an `any` parameter must be checked and
// rejected with an error when they are not an accepted shape. A nil or
// malformed node must never travel onward, because the renderer will fail
// on it far away from the call site that produced it.
package codegen
