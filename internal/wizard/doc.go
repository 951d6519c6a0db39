// Package wizard implements the keyword wizard's state machine.
//
// The wizard moves through four steps plus an error stage:
//
//	Input ──submit──▶ Fetching ──ok──▶ Review ──confirm──▶ Confirmed
//	  ▲                 │  │              │                    │
//	  │◀────cancel──────┘  └──err──▶ Error │                    │
//	  │◀──────────edit────────────────┴────┘                    │
//	  │◀──────────────────────restart (any stage)───────────────┘
//
// State is a plain value. Every transition is a method that returns the next
// State and leaves the receiver untouched, so the Bubble Tea model and the
// synchronous Controller share the same rules.
//
// # Stale Results
//
// Submit and Retry return a Request carrying the state's Generation. Cancel
// and Restart bump the generation, so a lookup that completes after the user
// moved on no longer matches and Resolve ignores it.
//
//	s := wizard.New()
//	s, _ = s.SetSeed(keyword.SlotFirst, "plumbing")
//	s, _ = s.SetSeed(keyword.SlotSecond, "Chicago")
//
//	s, req, err := s.Submit()
//	if err != nil {
//	    return err // s.Errors holds the per-slot messages
//	}
//	result := keyword.Lookup(ctx, provider, req.Seeds)
//	s = s.Resolve(req, result)
package wizard
