// Package task owns the task list: the Task entity, the Manager that
// holds the ordered in-memory collection, and the Store that mirrors it
// to a JSON file after every mutation.
//
// The state file format (todo_data.json):
//
//	{
//	  "next_id": 3,
//	  "tasks": [
//	    {
//	      "id": 1,
//	      "description": "Buy milk",
//	      "status": "pending",
//	      "priority": "medium",
//	      "category": "general",
//	      "created_date": "2026-08-29 10:15:00",
//	      "completed_date": null
//	    }
//	  ]
//	}
//
// # Identifiers
//
// Task ids start at 1 and are assigned from a monotonic counter. The
// counter never decrements: removing a task does not free its id, and
// only clearing the whole list resets the counter back to 1.
//
// # Status Values
//
//   - "pending": task has not been completed
//   - "completed": task is done; the transition is one-way
//
// # Lookups
//
// All description lookups are case-insensitive and return the first
// match in list order. Duplicate descriptions are permitted.
//
// # Failure Policy
//
// The Manager never fails hard on bad state. A missing, unreadable, or
// invalid state file yields an empty list with the counter at 1, and a
// failed save is logged and swallowed while the in-memory state keeps
// going. Validation failures (empty description, no matching task) are
// reported as boolean results, not errors.
package task
