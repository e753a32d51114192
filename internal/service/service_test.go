package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanda/offday-portal/internal/directus"
	"github.com/zanda/offday-portal/internal/model"
	"github.com/zanda/offday-portal/internal/queue"
)

// fakeStore is an in-memory stand-in for the data platform. PIN hashes
// use the scheme "hashed:<pin>" so verification needs no real hashing.
type fakeStore struct {
	employees map[int]model.Employee

	lookups  int
	reads    int
	verifies int
	created  []model.OffDayPayload

	failLookup error
	failVerify error
	failCreate error
}

func (f *fakeStore) EmployeeByUsername(_ context.Context, username string) (*model.Employee, error) {
	f.lookups++
	if f.failLookup != nil {
		return nil, f.failLookup
	}
	for _, e := range f.employees {
		if e.Username == username {
			e := e
			return &e, nil
		}
	}
	return nil, directus.ErrNotFound
}

func (f *fakeStore) EmployeeByID(_ context.Context, id int) (*model.Employee, error) {
	f.reads++
	e, ok := f.employees[id]
	if !ok {
		return nil, directus.ErrNotFound
	}
	return &e, nil
}

func (f *fakeStore) CreateOffDay(_ context.Context, p model.OffDayPayload) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeStore) VerifyPin(_ context.Context, pin, hash string) (bool, error) {
	f.verifies++
	if f.failVerify != nil {
		return false, f.failVerify
	}
	return hash == "hashed:"+pin, nil
}

type fakePub struct {
	events []queue.OffDayRequestedEvent
	fail   error
}

func (p *fakePub) OffDayRequested(_ context.Context, ev queue.OffDayRequestedEvent) error {
	if p.fail != nil {
		return p.fail
	}
	p.events = append(p.events, ev)
	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees: map[int]model.Employee{
			7: {ID: 7, Username: "jdoe", PinHash: "hashed:1234", FirstName: "Jane"},
		},
	}
}

func strptr(s string) *string { return &s }

func TestLogin_MissingFields(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	for _, creds := range []model.Credentials{
		{},
		{Name: "jdoe"},
		{Password: "1234"},
		{Name: "   ", Password: "1234"},
	} {
		res := svc.Login(context.Background(), creds)
		assert.False(t, res.OK)
		assert.Equal(t, ErrorParse, res.Kind)
		assert.Equal(t, "Parse error", res.Message)
	}
	assert.Zero(t, store.lookups, "no downstream call on parse failure")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := New(newFakeStore(), nil)

	res := svc.Login(context.Background(), model.Credentials{Name: "nobody", Password: "1234"})
	assert.False(t, res.OK)
	assert.Equal(t, ErrorNoUser, res.Kind)
	assert.Equal(t, "User not found", res.Message)
	assert.Nil(t, res.Identity)
}

func TestLogin_WrongPin(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	res := svc.Login(context.Background(), model.Credentials{Name: "jdoe", Password: "9999"})
	assert.False(t, res.OK)
	assert.Equal(t, ErrorBadPassword, res.Kind)
	assert.Equal(t, "Invalid Password", res.Message)
	assert.Equal(t, 1, store.verifies)
}

func TestLogin_Success(t *testing.T) {
	svc := New(newFakeStore(), nil)

	res := svc.Login(context.Background(), model.Credentials{Name: "jdoe", Password: "1234"})
	require.True(t, res.OK)
	assert.Equal(t, MsgLoginOK, res.Message)
	require.NotNil(t, res.Identity)
	assert.Equal(t, 7, res.Identity.ID)
	assert.Equal(t, "Jane", res.Identity.Username, "display name comes from First_Name")
}

func TestLogin_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failLookup = errors.New("connection refused")
	svc := New(store, nil)

	res := svc.Login(context.Background(), model.Credentials{Name: "jdoe", Password: "1234"})
	assert.Equal(t, ErrorServer, res.Kind)
	assert.Equal(t, "Internal Server Error", res.Message)
}

func TestLogin_VerifyFailure(t *testing.T) {
	store := newFakeStore()
	store.failVerify = errors.New("verify endpoint down")
	svc := New(store, nil)

	res := svc.Login(context.Background(), model.Credentials{Name: "jdoe", Password: "1234"})
	assert.Equal(t, ErrorServer, res.Kind)
}

func TestSubmitOffDay_ParseFailures(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	for name, form := range map[string]model.OffDayForm{
		"missing type":     {User: "7", OffDate: strptr("2024-05-01")},
		"missing user":     {OffType: "Leave Day"},
		"non-numeric user": {OffType: "Leave Day", User: "seven"},
	} {
		res := svc.SubmitOffDay(context.Background(), form)
		assert.Equal(t, ErrorParse, res.Kind, name)
	}
	assert.Zero(t, store.reads, "no downstream call on parse failure")
	assert.Empty(t, store.created)
}

func TestSubmitOffDay_SingleDayWinsOverRange(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	res := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType:  "Leave Day",
		OffDate:  strptr("2024-05-01"),
		StartOff: strptr("2024-06-01"),
		EndOff:   strptr("2024-06-05"),
		User:     "7",
	})
	require.True(t, res.OK)

	require.Len(t, store.created, 1)
	p := store.created[0]
	assert.Equal(t, 7, p.Employee)
	assert.True(t, p.Single)
	require.NotNil(t, p.StartDate)
	assert.Equal(t, "2024-05-01", *p.StartDate)
	assert.Nil(t, p.EndDate, "single-day requests carry no end date")
}

func TestSubmitOffDay_Range(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	res := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType:  "Travel Day",
		StartOff: strptr("2024-06-01"),
		EndOff:   strptr("2024-06-05"),
		Note:     strptr("conference"),
		User:     "7",
	})
	require.True(t, res.OK)
	assert.Equal(t, MsgOffDayOK, res.Message)

	require.Len(t, store.created, 1)
	p := store.created[0]
	assert.False(t, p.Single)
	assert.Equal(t, "2024-06-01", *p.StartDate)
	assert.Equal(t, "2024-06-05", *p.EndDate)
	assert.Equal(t, "conference", *p.Notes)
	assert.Equal(t, "Travel Day", p.Type)
}

func TestSubmitOffDay_UnknownUser(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	res := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType: "Leave Day",
		OffDate: strptr("2024-05-01"),
		User:    "99",
	})
	assert.Equal(t, ErrorNoUser, res.Kind)
	assert.Equal(t, "User not found", res.Message)
	assert.Empty(t, store.created, "storage is never mutated when the user check fails")
}

func TestSubmitOffDay_CreateFailure(t *testing.T) {
	store := newFakeStore()
	store.failCreate = errors.New("boom")
	svc := New(store, nil)

	res := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType: "Leave Day",
		OffDate: strptr("2024-05-01"),
		User:    "7",
	})
	assert.Equal(t, ErrorServer, res.Kind)
}

func TestSubmitOffDay_DuplicatesAccepted(t *testing.T) {
	// Submission has no dedup key: the same input twice stores two records.
	store := newFakeStore()
	svc := New(store, nil)

	form := model.OffDayForm{OffType: "Leave Day", OffDate: strptr("2024-05-01"), User: "7"}
	require.True(t, svc.SubmitOffDay(context.Background(), form).OK)
	require.True(t, svc.SubmitOffDay(context.Background(), form).OK)
	assert.Len(t, store.created, 2)
}

func TestSubmitOffDay_PublishesEvent(t *testing.T) {
	store := newFakeStore()
	pub := &fakePub{}
	svc := New(store, pub)

	res := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType: "Leave Day",
		OffDate: strptr("2024-05-01"),
		User:    "7",
	})
	require.True(t, res.OK)

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, 7, ev.Employee)
	assert.True(t, ev.SingleDay)
	assert.Equal(t, "Leave Day", ev.Type)
	assert.NotEmpty(t, ev.RequestedAt)
}

func TestSubmitOffDay_PublishFailureIgnored(t *testing.T) {
	store := newFakeStore()
	svc := New(store, &fakePub{fail: errors.New("broker down")})

	res := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType: "Leave Day",
		OffDate: strptr("2024-05-01"),
		User:    "7",
	})
	assert.True(t, res.OK, "eventing is best-effort and never fails the request")
	assert.Len(t, store.created, 1)
}

func TestSubmitOffDay_NoEventOnFailure(t *testing.T) {
	store := newFakeStore()
	pub := &fakePub{}
	svc := New(store, pub)

	_ = svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType: "Leave Day",
		OffDate: strptr("2024-05-01"),
		User:    "99",
	})
	assert.Empty(t, pub.events)
}

func TestDispatch_DisabledPlatform(t *testing.T) {
	// Without an API key the platform client is a disabled variant; both
	// operations surface it as a server error, not a panic or nil deref.
	svc := New(directus.New(directus.Config{BaseURL: "https://data.example.com"}), nil)

	login := svc.Login(context.Background(), model.Credentials{Name: "jdoe", Password: "1234"})
	assert.Equal(t, ErrorServer, login.Kind)

	sub := svc.SubmitOffDay(context.Background(), model.OffDayForm{
		OffType: "Leave Day",
		OffDate: strptr("2024-05-01"),
		User:    "7",
	})
	assert.Equal(t, ErrorServer, sub.Kind)
}
