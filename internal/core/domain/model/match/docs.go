// Package match holds the Match aggregate: the pairing of one traveler
// listing with one sender listing and the custody chain that follows it.
//
// Lifecycle:
//
//	Pending ──accept──> Accepted ──(4 checkpoints)──> Completed
//	   │
//	   └──reject──> Rejected
//
// Inside Accepted the package passes four checkpoints in a fixed order:
//
//	origin drop-off (sender) -> origin pickup (traveler)
//	  -> destination drop-off (traveler) -> destination pickup (receiver)
//
// The last checkpoint also moves the match to Completed. Every change goes
// through Match.Apply, which checks the actor first and the current state
// second, so a wrong actor always gets ErrActionIsForbidden.
//
// Each persisted match carries a version used for optimistic concurrency.
package match
