package engine

import "github.com/mpetit/ticketscan/internal/model"

// MarkDuplicates flags, in batch order, every done ticket whose
// authorization code was already seen on an earlier done ticket from a
// different file. Same-file re-imports are exempt, tickets without a code
// are never flagged, and nothing is removed: the flag is a display and
// export suppression hint only.
//
// The pass is recomputed over the whole batch each time, which is why it
// runs lazily on read/export rather than incrementally during scanning.
func MarkDuplicates(tickets []model.Ticket) {
	seen := make(map[string][]string) // auth code -> origins already seen

	for i := range tickets {
		t := &tickets[i]
		if t.Status != model.StatusDone {
			continue
		}
		t.Duplicate = false
		if t.AuthCode == nil || *t.AuthCode == "" {
			continue
		}

		code := *t.AuthCode
		for _, origin := range seen[code] {
			if origin != t.FileName {
				t.Duplicate = true
				break
			}
		}
		seen[code] = append(seen[code], t.FileName)
	}
}
