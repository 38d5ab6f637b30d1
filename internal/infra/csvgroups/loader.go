package csvgroups

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/infra/csvtable"
	"github.com/aalvaropc/mailgroup/internal/ports"
)

// headerLines is the number of lines consumed before group rows.
const headerLines = 1

type Loader struct {
	log *slog.Logger
}

type Option func(*Loader)

func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.GroupLoader = (*Loader)(nil)

// LoadGroups reads the group file. The header must be exactly the two columns
// "key" and "description" in either order. The first column of each row is
// the group name; slots follow file order.
func (l *Loader) LoadGroups(path string) (domain.GroupTable, error) {
	header, err := csvtable.ReadHeader(path)
	if err != nil {
		return domain.GroupTable{}, err
	}
	if !validHeader(csvtable.NormalizeHeader(header)) {
		return domain.GroupTable{}, &domain.OpError{
			Op:   "csvgroups.load",
			Kind: domain.KindSchema,
			Path: path,
			Err:  domain.ErrMalformedHeader,
		}
	}

	rows, err := csvtable.LoadKeyed(path, headerLines)
	if err != nil {
		return domain.GroupTable{}, err
	}

	entries := make([]domain.GroupEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.GroupEntry{Name: r.Key, Fields: r.Rest})
	}

	tbl := domain.NewGroupTable(path, entries)
	if dropped := len(entries) - tbl.Len(); dropped > 0 {
		l.log.Debug("groups.dropped_rows", "path", path, "count", dropped)
	}
	for _, name := range tbl.Names() {
		if domain.HasOperatorChars(name) {
			l.log.Warn("groups.name_contains_operator", "path", path, "group", name,
				"operators", domain.ExpressionOperators)
		}
	}
	l.log.Debug("groups.loaded", "path", path, "count", tbl.Len())
	return tbl, nil
}

func validHeader(h []string) bool {
	if len(h) != 2 {
		return false
	}
	return (h[0] == domain.HeaderKey && h[1] == domain.HeaderDescription) ||
		(h[0] == domain.HeaderDescription && h[1] == domain.HeaderKey)
}
