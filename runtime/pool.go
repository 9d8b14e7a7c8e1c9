package runtime

import (
	"fmt"
	"guess-lab/domain"
	"guess-lab/errors"
	"strings"

	"github.com/samber/lo"
)

// Pool is the fixed set of participants of a game.
// Membership and identities are decided once in NewPool and never change,
// so the pool can be read from any goroutine without locking.
type Pool struct {
	members []domain.Participant
}

// NewPool creates one participant per name, each with its own mailbox.
// Names must be non-empty and unique.
func NewPool(names []string, mailboxSize int) (*Pool, error) {
	if len(names) == 0 {
		return nil, errors.ErrEmptyPool
	}
	names = lo.Map(names, func(name string, _ int) string {
		return strings.TrimSpace(name)
	})
	if lo.Contains(names, "") {
		return nil, errors.ErrEmptyParticipantName
	}
	if duplicates := lo.FindDuplicates(names); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: %s", errors.ErrDuplicateParticipant, strings.Join(duplicates, ","))
	}
	return &Pool{
		members: lo.Map(names, func(name string, _ int) domain.Participant {
			return domain.NewParticipant(name, mailboxSize)
		}),
	}, nil
}

// Members returns a copy of the participants, in creation order.
func (p *Pool) Members() []domain.Participant {
	return append([]domain.Participant(nil), p.members...)
}

func (p *Pool) Identities() []domain.Identity {
	return lo.Map(p.members, func(m domain.Participant, _ int) domain.Identity {
		return m.Identity
	})
}

func (p *Pool) Size() int {
	return len(p.members)
}
