package repository

import (
	"sort"
	"sync"

	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	"github.com/deskhound/deskhound/pkg/domain/model/ticket"
	"github.com/deskhound/deskhound/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Registry owns all open ticket state. The primary map is keyed by the ticket
// card timestamp; the secondary index maps the source message timestamp back
// to the card. Both maps are only ever touched together, under one lock, so
// the bijection between them holds by construction.
type Registry struct {
	mu      sync.RWMutex
	tickets map[types.MessageTS]*ticket.Ticket
	index   map[types.MessageTS]types.MessageTS
}

func NewRegistry() *Registry {
	return &Registry{
		tickets: make(map[types.MessageTS]*ticket.Ticket),
		index:   make(map[types.MessageTS]types.MessageTS),
	}
}

func (r *Registry) Put(t *ticket.Ticket) error {
	if err := t.Validate(); err != nil {
		return goerr.Wrap(err, "invalid ticket")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[t.TicketTS]; ok {
		return goerr.New("ticket already exists", goerr.V("ticket_ts", t.TicketTS))
	}

	r.tickets[t.TicketTS] = copyTicket(t)
	r.index[t.OriginalTS] = t.TicketTS
	return nil
}

func (r *Registry) Get(ticketTS types.MessageTS) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tickets[ticketTS]
	if !ok {
		return nil, goerr.New("ticket not found",
			goerr.T(errs.TagNotFound), goerr.V("ticket_ts", ticketTS))
	}
	return copyTicket(t), nil
}

func (r *Registry) GetByOriginal(originalTS types.MessageTS) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticketTS, ok := r.index[originalTS]
	if !ok {
		return nil, goerr.New("ticket not found for source message",
			goerr.T(errs.TagNotFound), goerr.V("original_ts", originalTS))
	}
	t, ok := r.tickets[ticketTS]
	if !ok {
		return nil, goerr.New("ticket index is stale",
			goerr.T(errs.TagNotFound), goerr.V("original_ts", originalTS), goerr.V("ticket_ts", ticketTS))
	}
	return copyTicket(t), nil
}

// Delete removes the ticket record and its index entry together. It fails
// without touching anything when the key is unknown.
func (r *Registry) Delete(ticketTS types.MessageTS) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketTS]
	if !ok {
		return goerr.New("ticket not found",
			goerr.T(errs.TagNotFound), goerr.V("ticket_ts", ticketTS))
	}

	delete(r.tickets, ticketTS)
	delete(r.index, t.OriginalTS)
	return nil
}

// Claim adds the user to the claimer set of the ticket. It returns the updated
// ticket and whether the set actually changed.
func (r *Registry) Claim(ticketTS types.MessageTS, user types.UserID) (*ticket.Ticket, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketTS]
	if !ok {
		return nil, false, goerr.New("ticket not found",
			goerr.T(errs.TagNotFound), goerr.V("ticket_ts", ticketTS))
	}
	changed := t.Claim(user)
	return copyTicket(t), changed, nil
}

// MarkNotSure adds the user to the not-sure set of the ticket.
func (r *Registry) MarkNotSure(ticketTS types.MessageTS, user types.UserID) (*ticket.Ticket, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketTS]
	if !ok {
		return nil, false, goerr.New("ticket not found",
			goerr.T(errs.TagNotFound), goerr.V("ticket_ts", ticketTS))
	}
	changed := t.MarkNotSure(user)
	return copyTicket(t), changed, nil
}

func (r *Registry) List() []*ticket.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := make([]*ticket.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		tickets = append(tickets, copyTicket(t))
	}
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.Before(tickets[j].CreatedAt)
	})
	return tickets
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tickets)
}

// Export returns a deep copy of the full state for snapshotting.
func (r *Registry) Export() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := &Snapshot{
		Tickets: make(map[types.MessageTS]*ticket.Ticket, len(r.tickets)),
		Index:   make(map[types.MessageTS]types.MessageTS, len(r.index)),
	}
	for ts, t := range r.tickets {
		snapshot.Tickets[ts] = copyTicket(t)
	}
	for originalTS, ticketTS := range r.index {
		snapshot.Index[originalTS] = ticketTS
	}
	return snapshot
}

// Restore replaces the full state with the snapshot contents.
func (r *Registry) Restore(snapshot *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets = make(map[types.MessageTS]*ticket.Ticket, len(snapshot.Tickets))
	r.index = make(map[types.MessageTS]types.MessageTS, len(snapshot.Index))
	for ts, t := range snapshot.Tickets {
		r.tickets[ts] = copyTicket(t)
	}
	for originalTS, ticketTS := range snapshot.Index {
		r.index[originalTS] = ticketTS
	}
}

func copyTicket(t *ticket.Ticket) *ticket.Ticket {
	copied := *t
	copied.Claimers = append([]types.UserID{}, t.Claimers...)
	copied.NotSure = append([]types.UserID{}, t.NotSure...)
	return &copied
}
