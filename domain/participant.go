// Package domain contains core concepts of the guessing game.
// This file defines Participant identities and their mailboxes.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is the stable handle of a participant.
// It is comparable and used as the key when collecting guesses.
type Identity struct {
	ID   uuid.UUID
	Name string
}

func NewIdentity(name string) Identity {
	return Identity{ID: uuid.New(), Name: name}
}

func (i Identity) String() string {
	return fmt.Sprintf("%s(%s)", i.Name, i.ID.String()[:8])
}

// Mailbox is the inbound queue owned by a single unit of control.
type Mailbox chan Message

// Address is the send-only side of a Mailbox, carried inside messages.
type Address chan<- Message

func NewMailbox(size int) Mailbox {
	return make(Mailbox, size)
}

func (m Mailbox) Address() Address {
	return (chan Message)(m)
}

// Participant binds an identity to the mailbox it reads from.
type Participant struct {
	Identity Identity
	Mailbox  Mailbox
}

func NewParticipant(name string, mailboxSize int) Participant {
	return Participant{
		Identity: NewIdentity(name),
		Mailbox:  NewMailbox(mailboxSize),
	}
}
