package sink

import (
	"context"
	"guess-lab/contract"
	"guess-lab/domain"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var (
	_ contract.RoundObserver = LogRoundObserver{}
	_ contract.RoundObserver = TableRoundObserver{}
)

// LogRoundObserver logs the start and the resolution of each round.
type LogRoundObserver struct {
	log *slog.Logger
}

func NewLogRoundObserver(log *slog.Logger) LogRoundObserver {
	return LogRoundObserver{log: log}
}

func (o LogRoundObserver) RoundStarted(_ context.Context, s domain.RoundStarted) {
	o.log.Debug("Round started", "round", s.Round, "number", s.Number, "participants", s.PoolSize)
}

func (o LogRoundObserver) RoundResolved(_ context.Context, r domain.RoundReport) {
	o.log.Info("Round resolved",
		"round", r.Round,
		"number", r.Number,
		"secret", r.Secret,
		"guesses", len(r.Guesses),
		"winner", winnerName(r.Winner),
		"duration", r.ResolvedAt.Sub(r.StartedAt))
}

// TableRoundObserver renders the guesses of every resolved round as a table.
type TableRoundObserver struct {
	out io.Writer
}

func NewTableRoundObserver(out io.Writer) TableRoundObserver {
	return TableRoundObserver{out: out}
}

func (TableRoundObserver) RoundStarted(context.Context, domain.RoundStarted) {}

func (o TableRoundObserver) RoundResolved(_ context.Context, r domain.RoundReport) {
	table := tablewriter.NewWriter(o.out)
	table.SetHeader([]string{"Participant", "Guess", "Distance", "Result"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCaption(true, "round "+strconv.FormatUint(r.Number, 10)+
		" secret "+strconv.Itoa(r.Secret)+" winner "+winnerName(r.Winner))

	rows := lo.MapToSlice(r.Guesses, func(id domain.Identity, value int) []string {
		result := ""
		if r.Winner != nil && *r.Winner == id {
			result = "WINNER"
		}
		return []string{
			id.Name,
			strconv.Itoa(value),
			strconv.Itoa(domain.Distance(value, r.Secret)),
			result,
		}
	})
	// Map iteration is random, keep the output stable
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	table.AppendBulk(rows)
	table.Render()
}
