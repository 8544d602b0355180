// Package matching decides which class offerings a student is eligible for.
//
// Every function in this package is pure: callers pass the active class snapshot of a
// branch together with the student's selection or profile, and receive availability sets,
// teacher lookups, or eligible class ids. Nothing is cached between calls.
//
// Level labels are matched by their extracted "levelN" key whenever the student selected a
// numeric level, and loosely (normalized substring containment) otherwise. The same policy
// backs availability, teacher lookup, and auto-enrollment so the three never disagree.
package matching
