package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pets-day-registration/internal/domain/events"
	"pets-day-registration/internal/domain/registration"
)

func seedEvent(t *testing.T, repo *EventRepo) events.Event {
	t.Helper()
	e := events.Event{
		ID:           "event-1",
		Name:         "PETs DAY",
		WhatsAppLink: "https://chat.example/petsday",
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return e
}

func registerInput(email string, petNames ...string) registration.RegisterInput {
	in := registration.RegisterInput{
		Tutor: registration.TutorInput{
			FullName:    "Ana Silva",
			Email:       email,
			Phone:       "(11) 98765-4321",
			Password:    "Passw0rd",
			LGPDConsent: true,
		},
	}
	for _, name := range petNames {
		in.Pets = append(in.Pets, registration.PetInput{Name: name, Species: registration.SpeciesDog})
	}
	return in
}

func TestGateway_Register_NumbersFollowInputOrder(t *testing.T) {
	repo := NewEventRepo()
	seedEvent(t, repo)
	gw := NewGateway(repo)

	res, err := gw.Register(context.Background(), registerInput("ana@example.com", "Rex", "Mimi", "Bob"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if len(res.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %#v", res.Entries)
	}
	names := []string{"Rex", "Mimi", "Bob"}
	for i, e := range res.Entries {
		if e.PetName != names[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, names[i], e.PetName)
		}
		if e.LuckyNumber != int64(i+1) {
			t.Fatalf("entry %d: expected number %d, got %d", i, i+1, e.LuckyNumber)
		}
	}
	if res.WhatsAppLink == "" || res.EventName != "PETs DAY" {
		t.Fatalf("event data missing in result: %#v", res)
	}
}

func TestGateway_Register_NumbersDistinctAcrossTutors(t *testing.T) {
	repo := NewEventRepo()
	seedEvent(t, repo)
	gw := NewGateway(repo)

	res1, err := gw.Register(context.Background(), registerInput("a@example.com", "Rex"))
	if err != nil {
		t.Fatalf("Register #1 error: %v", err)
	}
	res2, err := gw.Register(context.Background(), registerInput("b@example.com", "Mimi", "Bob"))
	if err != nil {
		t.Fatalf("Register #2 error: %v", err)
	}

	seen := map[int64]bool{}
	for _, e := range append(res1.Entries, res2.Entries...) {
		if seen[e.LuckyNumber] {
			t.Fatalf("lucky number %d issued twice", e.LuckyNumber)
		}
		seen[e.LuckyNumber] = true
	}
}

func TestGateway_Register_DuplicateEmail(t *testing.T) {
	repo := NewEventRepo()
	seedEvent(t, repo)
	gw := NewGateway(repo)

	if _, err := gw.Register(context.Background(), registerInput("ana@example.com", "Rex")); err != nil {
		t.Fatalf("Register #1 error: %v", err)
	}

	_, err := gw.Register(context.Background(), registerInput("Ana@Example.com", "Mimi"))
	var tie *registration.TutorInsertError
	if !errors.As(err, &tie) {
		t.Fatalf("expected TutorInsertError, got %v", err)
	}

	// el duplicado no debe haber insertado mascotas
	if got := len(gw.order); got != 1 {
		t.Fatalf("expected 1 pet row, got %d", got)
	}
}

func TestGateway_Register_NoActiveEvent(t *testing.T) {
	gw := NewGateway(NewEventRepo())

	_, err := gw.Register(context.Background(), registerInput("ana@example.com", "Rex"))
	if !errors.Is(err, registration.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGateway_GenerateLuckyNumber_Idempotent(t *testing.T) {
	repo := NewEventRepo()
	event := seedEvent(t, repo)
	gw := NewGateway(repo)

	res, err := gw.Register(context.Background(), registerInput("ana@example.com", "Rex"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	petID := res.Entries[0].PetID
	issued := res.Entries[0].LuckyNumber

	n1, err := gw.GenerateLuckyNumber(context.Background(), petID, event.ID)
	if err != nil {
		t.Fatalf("GenerateLuckyNumber error: %v", err)
	}
	n2, err := gw.GenerateLuckyNumber(context.Background(), petID, event.ID)
	if err != nil {
		t.Fatalf("GenerateLuckyNumber #2 error: %v", err)
	}
	if n1 != issued || n2 != issued {
		t.Fatalf("expected idempotent %d, got %d then %d", issued, n1, n2)
	}
}

func TestGateway_GenerateLuckyNumber_UnknownPet(t *testing.T) {
	repo := NewEventRepo()
	event := seedEvent(t, repo)
	gw := NewGateway(repo)

	if _, err := gw.GenerateLuckyNumber(context.Background(), "nope", event.ID); err == nil {
		t.Fatalf("expected error for unknown pet")
	}
}

func TestGateway_Search_MatchesNameAndTicket(t *testing.T) {
	repo := NewEventRepo()
	seedEvent(t, repo)
	gw := NewGateway(repo)

	if _, err := gw.Register(context.Background(), registerInput("ana@example.com", "Rex")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// por nombre de tutor, case-insensitive
	got, err := gw.Search(context.Background(), "ana sil")
	if err != nil || len(got) != 1 {
		t.Fatalf("search by tutor name: got %#v err=%v", got, err)
	}

	// por nombre de mascota
	got, err = gw.Search(context.Background(), "rex")
	if err != nil || len(got) != 1 || got[0].PetName != "Rex" {
		t.Fatalf("search by pet name: got %#v err=%v", got, err)
	}

	// por ticket zero-padded: el primero emitido es 000001
	got, err = gw.Search(context.Background(), "000001")
	if err != nil || len(got) != 1 || got[0].LuckyNumber != 1 {
		t.Fatalf("search by ticket: got %#v err=%v", got, err)
	}

	// sin match
	got, err = gw.Search(context.Background(), "zzz")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %#v err=%v", got, err)
	}
}

func TestEventRepo_Active_PicksLatest(t *testing.T) {
	repo := NewEventRepo()
	base := time.Now()

	older := events.Event{ID: "e1", Name: "Old", CreatedAt: base.Add(-time.Hour)}
	newer := events.Event{ID: "e2", Name: "New", CreatedAt: base}
	if err := repo.Create(context.Background(), older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	if err := repo.Create(context.Background(), newer); err != nil {
		t.Fatalf("create newer: %v", err)
	}

	got, err := repo.Active(context.Background())
	if err != nil {
		t.Fatalf("Active error: %v", err)
	}
	if got.ID != "e2" {
		t.Fatalf("expected latest event, got %#v", got)
	}
}

func TestEventRepo_Active_EmptyIsNotFound(t *testing.T) {
	repo := NewEventRepo()
	if _, err := repo.Active(context.Background()); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("expected events.ErrNotFound, got %v", err)
	}
}
