// Package enumset provides named bit-sets and stateful enum values for Go.
//
// Enumset models finite, named state spaces as plain value types: a named
// bit-set over a fixed-width integer (Set), a sharded variant for member
// lists that outgrow the native width (BigSet), a value-carrying set
// (MapSet), and a single-valued enum with transition history and change
// hooks (Enum).
//
// # Quick Start
//
// Sets:
//
//	s, _ := enumset.NewSet([]string{"read", "write", "exec"})
//	s.Add("read", "write")
//	fmt.Println(s)                // "read,write"
//	fmt.Println(s.IsEmpty())      // false
//
// Initial activation accepts variadic names, a slice, or one comma-delimited
// string; all three normalize to the same state:
//
//	s, _ := enumset.NewSet(members, enumset.WithActive("read,write"))
//
// Enums:
//
//	e, _ := enumset.NewEnum([]string{"new", "active", "done"},
//	    enumset.WithInitial("new"))
//	e.SetValue("active")
//	e.MoveNext()                  // "done"
//	e.ChangedTo("active")         // true
//
// Change hooks may veto a transition by returning an error; the enum rolls
// back to its previous value before the error reaches the caller:
//
//	e, _ := enumset.NewEnum(values, enumset.WithOnChange(
//	    func(e *enumset.Enum, from, to string) error {
//	        if to == "done" && from != "active" {
//	            return errors.New("must pass through active")
//	        }
//	        return nil
//	    }))
//
// # Large Member Lists
//
// A Set holds at most 63 members. BigSet chunks an arbitrarily long member
// list into consecutive Set shards and routes every name-based operation to
// the owning shard:
//
//	b, _ := enumset.NewBigSet(manyNames)
//	b.Add("name_1000")
//	bm := b.Bitmap() // roaring bitmap of active member positions
//
// Note that BigSet is strict where Set is lenient: mutating an undeclared
// name returns ErrUnknownMember instead of being silently ignored.
//
// # Declarations
//
// The declare subpackage loads set and enum declarations from YAML or JSON
// documents, for member lists provided at runtime rather than compiled in.
//
// # Concurrency
//
// All types are plain single-threaded value types. Nothing here locks;
// callers that share instances across goroutines must synchronize.
package enumset
