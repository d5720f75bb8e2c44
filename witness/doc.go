// Package witness represents capabilities as values instead of interface
// conformances.
//
// # Overview
//
// A Go interface such as fmt.Stringer ties one implementation to one type:
// a type has exactly one String method. A witness is the same capability
// written down as a struct of function fields, so a type can have as many
// implementations as there are values:
//
//	compact := witness.NewDescribing(func(c dbconn.Info) string { ... })
//	url := witness.NewDescribing(func(c dbconn.Info) string { ... })
//
// Both are a [Describing] for the same type and neither is privileged. Call
// sites say which one they want by passing it.
//
// # Shapes
//
//   - [Describing] renders a value as a string.
//   - [Combining] merges two values of one type.
//   - [EmptyInitializing] produces a starting value.
//   - [Monoid] pairs an [EmptyInitializing] with a [Combining].
//   - [Equating], [Ordering], [Hashing] and [Validating] cover equality,
//     order, hashing and validation the same way.
//
// # Contramap
//
// Given a witness for A and a func(B) A, the Contramap family builds a
// witness for B that converts first and then delegates:
//
//	secure := witness.Contramap(compact, func(c dbconn.Info) dbconn.Info {
//	    c.Password = "******"
//	    return c
//	})
//
// The base witness is not touched. Contramap by the identity function
// behaves like the base, and contramapping by f then g behaves like
// contramapping once by the composition of f after g.
//
// # Folding
//
// [Reduce] folds a slice left to right starting from an
// [EmptyInitializing] and merging with a [Combining]. Swapping witnesses
// swaps semantics without touching the call site:
//
//	witness.Reduce([]int{1, 2, 3, 4}, witness.Zero[int](), witness.Sum[int]())     // 10
//	witness.Reduce([]int{1, 2, 3, 4}, witness.Constant(1), witness.Product[int]()) // 24
//
// The fold assumes nothing about associativity or commutativity; the
// combining function is applied strictly in slice order.
//
// # Bridges
//
// Types that already implement a nominal capability can be lifted into a
// witness: [EquatingFromComparable] for compare.Comparable,
// [OrderingFromSortable] for sortable.Sortable and [HashingFromHashable]
// for hashing.Hashable.
//
// # Thread Safety
//
// Witnesses built by this package hold no mutable state and may be shared
// between goroutines. Witnesses built from caller-supplied functions are as
// safe as those functions.
package witness
