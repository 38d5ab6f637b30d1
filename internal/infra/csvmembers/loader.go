package csvmembers

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/infra/csvtable"
	"github.com/aalvaropc/mailgroup/internal/ports"
)

// fieldDelim separates multiple values inside one cell.
const fieldDelim = ","

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

var _ ports.MemberLoader = (*Loader)(nil)

// LoadMembers reads the member file. The header row is required and must
// contain every column in domain.RequiredMemberColumns; other columns are
// ignored.
func (l *Loader) LoadMembers(path string) (domain.MemberTable, error) {
	tbl, err := csvtable.LoadDelimitedWithFieldSplit(path, fieldDelim, true)
	if err != nil {
		return domain.MemberTable{}, err
	}

	cols := make(map[string][][]string, len(domain.RequiredMemberColumns))
	for _, name := range domain.RequiredMemberColumns {
		c, ok := tbl.Column(name)
		if !ok {
			return domain.MemberTable{}, &domain.OpError{
				Op:   "csvmembers.load",
				Kind: domain.KindSchema,
				Path: path,
				Err:  fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(domain.RequiredMemberColumns, ", ")),
			}
		}
		cols[name] = c
	}

	out := domain.MemberTable{
		Source:  path,
		Members: make([]domain.Member, tbl.Rows),
	}
	for i := 0; i < tbl.Rows; i++ {
		m := domain.Member{
			LastName:  cols[domain.ColumnLastName][i],
			FirstName: cols[domain.ColumnFirstName][i],
			Email:     cols[domain.ColumnEmail][i],
			Groups:    normalizeGroups(cols[domain.ColumnGroups][i]),
		}
		if len(m.Email) > 1 {
			l.log.Warn("members.multiple_emails", "path", path, "row", i+2, "using", m.Email[0])
		}
		out.Members[i] = m
	}

	l.log.Debug("members.loaded", "path", path, "count", len(out.Members))
	return out, nil
}

// normalizeGroups lowercases group references and drops empty entries.
func normalizeGroups(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, g := range in {
		g = domain.NormalizeGroupName(g)
		if g == "" {
			continue
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
