package usecase

import (
	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/ports"
)

// --- fakes shared by use case tests ---

type fakeMemberLoader struct {
	tbl domain.MemberTable
}

func (f fakeMemberLoader) LoadMembers(path string) (domain.MemberTable, error) {
	tbl := f.tbl
	tbl.Source = path
	return tbl, nil
}

type fakeGroupLoader struct {
	entries []domain.GroupEntry
	calls   *int
}

func (f fakeGroupLoader) LoadGroups(path string) (domain.GroupTable, error) {
	if f.calls != nil {
		*f.calls++
	}
	return domain.NewGroupTable(path, f.entries), nil
}

type errMemberLoader struct{ err error }

func (e errMemberLoader) LoadMembers(_ string) (domain.MemberTable, error) {
	return domain.MemberTable{}, e.err
}

type errGroupLoader struct{ err error }

func (e errGroupLoader) LoadGroups(_ string) (domain.GroupTable, error) {
	return domain.GroupTable{}, e.err
}

type fakeInitializer struct {
	spec  domain.ProjectSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.ProjectSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

var (
	_ ports.MemberLoader       = fakeMemberLoader{}
	_ ports.GroupLoader        = fakeGroupLoader{}
	_ ports.ProjectInitializer = (*fakeInitializer)(nil)
)

func newMember(first, last, email string, groups ...string) domain.Member {
	mem := domain.Member{Groups: groups}
	if first != "" {
		mem.FirstName = []string{first}
	}
	if last != "" {
		mem.LastName = []string{last}
	}
	if email != "" {
		mem.Email = []string{email}
	}
	return mem
}

func exampleMembers() fakeMemberLoader {
	return fakeMemberLoader{tbl: domain.MemberTable{Members: []domain.Member{
		newMember("John", "Doe", "j@x.com", "proj1"),
		newMember("Jane", "Doe", "jane@y.com", "proj1", "mgmt"),
		newMember("Jim", "Roe", "jim@z.com", "mgmt"),
	}}}
}

func exampleGroups() fakeGroupLoader {
	return fakeGroupLoader{entries: []domain.GroupEntry{
		{Name: "proj1", Fields: []string{"Project 1"}},
		{Name: "proj2", Fields: []string{"Project 2"}},
		{Name: "mgmt", Fields: []string{"Management"}},
	}}
}

var exampleSources = domain.Sources{MembersPath: "members.csv", GroupsPath: "groups.csv"}
