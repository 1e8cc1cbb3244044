// Package roster splits a session's participants between its trainers.
//
// When the participants divide evenly every trainer gets the same share, in
// assignment order. Otherwise each chief trainer gets floor(N/T) from the
// front of the list and the regular trainers split what is left, the
// earliest regulars taking one extra each until the remainder runs out.
package roster

import "mddrc-backend/internal/models"

// Share is one trainer's contiguous slice of the participant list.
type Share struct {
	TrainerID      string   `json:"trainer_id"`
	Role           string   `json:"role"`
	Start          int      `json:"start"`
	Count          int      `json:"count"`
	ParticipantIDs []string `json:"participant_ids"`
}

// Distribute returns one share per distinct trainer, in assignment order.
func Distribute(participantIDs []string, assignments []models.TrainerAssignment) []Share {
	trainers := dedupe(assignments)
	shares := make([]Share, len(trainers))
	for i, a := range trainers {
		shares[i] = Share{TrainerID: a.TrainerID, Role: roleOf(a), ParticipantIDs: []string{}}
	}

	n, t := len(participantIDs), len(trainers)
	if n == 0 || t == 0 {
		return shares
	}

	if n%t == 0 {
		per := n / t
		for i := range shares {
			shares[i].Start, shares[i].Count = i*per, per
		}
		return fill(shares, participantIDs)
	}

	base := n / t
	var chiefs, regulars []int
	for i, a := range trainers {
		if a.IsChief() {
			chiefs = append(chiefs, i)
		} else {
			regulars = append(regulars, i)
		}
	}

	for ci, i := range chiefs {
		shares[i].Start, shares[i].Count = ci*base, base
	}

	forChiefs := len(chiefs) * base
	if len(regulars) > 0 {
		left := n - forChiefs
		per, extra := left/len(regulars), left%len(regulars)
		for ri, i := range regulars {
			shares[i].Start = forChiefs + ri*per + min(ri, extra)
			shares[i].Count = per
			if ri < extra {
				shares[i].Count++
			}
		}
	}
	return fill(shares, participantIDs)
}

// AssignedTo returns the participants of one trainer. The bool is false
// when the trainer has no assignment in the session.
func AssignedTo(participantIDs []string, assignments []models.TrainerAssignment, trainerID string) ([]string, bool) {
	for _, s := range Distribute(participantIDs, assignments) {
		if s.TrainerID == trainerID {
			return s.ParticipantIDs, true
		}
	}
	return nil, false
}

func fill(shares []Share, ids []string) []Share {
	for i := range shares {
		s := &shares[i]
		end := s.Start + s.Count
		if s.Start >= len(ids) || s.Count == 0 {
			continue
		}
		if end > len(ids) {
			end = len(ids)
		}
		s.ParticipantIDs = append([]string(nil), ids[s.Start:end]...)
	}
	return shares
}

func dedupe(assignments []models.TrainerAssignment) []models.TrainerAssignment {
	seen := make(map[string]bool, len(assignments))
	out := make([]models.TrainerAssignment, 0, len(assignments))
	for _, a := range assignments {
		if seen[a.TrainerID] {
			continue
		}
		seen[a.TrainerID] = true
		out = append(out, a)
	}
	return out
}

func roleOf(a models.TrainerAssignment) string {
	if a.IsChief() {
		return models.TrainerChief
	}
	return models.TrainerRegular
}
