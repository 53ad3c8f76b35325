// Package pset provides Set, a mutable set that takes part in object
// persistence: every in-place mutation raises the changed flag of the
// embedded persistent.Base and, when the set was built with WithSink,
// notifies the sink so a persistence manager can write the set back.
//
// Each method belongs to one of six shapes:
//
//   - pure delegates (Contains, All, Items, Len) read the backing collection;
//   - stripping reads (Equal, IsSubset, ...) replace a *Set operand with its
//     backing collection and return a bool; IsProperSubset and
//     IsProperSuperset, like the operators, fail on anything but a set;
//   - output operations (Union, Intersection, ...) never touch the receiver
//     and return a fresh *Set;
//   - operators (And, Or, Sub, Xor and the reflected RAnd, ROr, RSub, RXor)
//     accept only sets and return a fresh *Set;
//   - mutations (Add, Remove, Update, ...) change the receiver and flag it;
//   - in-place operators (IAnd, IOr, ISub, IXor) accept only sets, change
//     the receiver, flag it and return it.
//
// A failed operation never flags the receiver.
//
// Sets are not hashable: Hash always fails and Set values cannot be compared
// with == or used as map keys.
package pset
