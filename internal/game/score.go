package game

import "fmt"

// FoxCredit selects who profits from a caught fox.
type FoxCredit string

const (
	// FoxCreditTeammate credits a player when their teammate is recorded as catcher.
	FoxCreditTeammate FoxCredit = "teammate"
	// FoxCreditTeam also credits the catcher.
	FoxCreditTeam FoxCredit = "team"
)

// Rules are the tunable parts of the scoring table.
type Rules struct {
	KarlchenBonus int
	FoxCredit     FoxCredit
}

func DefaultRules() Rules {
	return Rules{KarlchenBonus: 2, FoxCredit: FoxCreditTeammate}
}

func (r Rules) Validate() error {
	if r.KarlchenBonus < 0 {
		return fmt.Errorf("karlchen bonus must not be negative, got %d", r.KarlchenBonus)
	}
	switch r.FoxCredit {
	case FoxCreditTeammate, FoxCreditTeam:
		return nil
	default:
		return fmt.Errorf("unknown fox credit %q", r.FoxCredit)
	}
}

// Policy turns one player's declarations into their round score. It must be
// pure: the result depends only on info.
type Policy func(info PlayerRoundInfo) int

// StandardPolicy scores a round the way the table keeps it on paper.
func StandardPolicy(rules Rules) Policy {
	return func(info PlayerRoundInfo) int {
		score := 0
		stakes := info.Bids + info.ExAnte

		if info.Won {
			score += 1 + stakes
			if info.Contra {
				score++
			}
		} else {
			score -= 1 + stakes
		}

		score += info.Doppelkopf

		if info.Karlchen {
			score += rules.KarlchenBonus
		}
		if info.KarlchenCaught {
			score++
		}

		for _, catcher := range info.FoxEvents {
			if info.Teammate != "" && catcher == info.Teammate {
				score++
			}
			if rules.FoxCredit == FoxCreditTeam && catcher == info.Player {
				score++
			}
		}
		return score
	}
}
