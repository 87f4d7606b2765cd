package game

import "fmt"

// EventKind is something a player can declare during a round.
type EventKind int

const (
	EventWon EventKind = iota
	EventLost
	EventContra
	EventBid
	EventExAnte
	EventDoppelkopf
	EventKarlchen
	EventKarlchenCaught
	EventFoxCaught
	EventTeammate
	EventDone
)

var eventLabels = map[EventKind]string{
	EventWon:            "Won",
	EventLost:           "Lost",
	EventContra:         "Contra",
	EventBid:            "Bid",
	EventExAnte:         "Ex ante",
	EventDoppelkopf:     "Doppelkopf",
	EventKarlchen:       "Karlchen",
	EventKarlchenCaught: "Karlchen caught",
	EventFoxCaught:      "Fox caught",
	EventTeammate:       "Teammate",
	EventDone:           "Done",
}

func (k EventKind) String() string {
	if s, ok := eventLabels[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a declared event. Partner is only used by EventTeammate.
type Event struct {
	Kind    EventKind
	Partner Token
}

// EventOption pairs a menu label with the event it declares.
type EventOption struct {
	Label string
	Event Event
}

// EventOptions lists the events player active can declare, in menu order.
func EventOptions(players []Player, active Token) []EventOption {
	out := make([]EventOption, 0, 16)
	for _, k := range []EventKind{
		EventWon, EventLost, EventContra, EventBid, EventExAnte,
		EventDoppelkopf, EventKarlchen, EventKarlchenCaught, EventFoxCaught,
	} {
		out = append(out, EventOption{Label: k.String(), Event: Event{Kind: k}})
	}
	for _, p := range players {
		if p.ID == active {
			continue
		}
		out = append(out, EventOption{
			Label: EventTeammate.String() + ": " + p.Name,
			Event: Event{Kind: EventTeammate, Partner: p.ID},
		})
	}
	return append(out, EventOption{Label: EventDone.String(), Event: Event{Kind: EventDone}})
}

// ResolveEvent maps a menu label back to its event.
func ResolveEvent(options []EventOption, label string) (Event, bool) {
	for _, o := range options {
		if o.Label == label {
			return o.Event, true
		}
	}
	return Event{}, false
}

// Labels returns the option labels in order.
func Labels(options []EventOption) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Label)
	}
	return out
}
