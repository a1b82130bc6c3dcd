package application

import (
	"errors"
	"testing"

	"skillbridge/internal/domain/actor"

	"github.com/google/uuid"
)

func TestDecide_Table(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		party   Party
		wantErr error
		wantMsg string
	}{
		{name: "freelancer edits pending", from: StatusPending, to: StatusPending, party: PartyFreelancer},
		{name: "company accepts", from: StatusPending, to: StatusAccepted, party: PartyCompany},
		{name: "company rejects", from: StatusPending, to: StatusRejected, party: PartyCompany},
		{name: "freelancer withdraws", from: StatusPending, to: StatusWithdrawn, party: PartyFreelancer},

		{name: "freelancer accepts", from: StatusPending, to: StatusAccepted, party: PartyFreelancer, wantErr: ErrTransitionForbidden, wantMsg: "Only the mission's company can accept or reject applications."},
		{name: "freelancer rejects", from: StatusPending, to: StatusRejected, party: PartyFreelancer, wantErr: ErrTransitionForbidden},
		{name: "company withdraws", from: StatusPending, to: StatusWithdrawn, party: PartyCompany, wantErr: ErrTransitionForbidden, wantMsg: "Only the freelancer can withdraw this application."},
		{name: "company edits", from: StatusPending, to: StatusPending, party: PartyCompany, wantErr: ErrTransitionForbidden, wantMsg: "Only the freelancer can modify the proposal or rate."},
		{name: "stranger accepts", from: StatusPending, to: StatusAccepted, party: PartyNone, wantErr: ErrTransitionForbidden},
		{name: "stranger withdraws", from: StatusPending, to: StatusWithdrawn, party: PartyNone, wantErr: ErrTransitionForbidden},

		{name: "accepted then rejected", from: StatusAccepted, to: StatusRejected, party: PartyCompany, wantErr: ErrTransitionState, wantMsg: "Only pending applications can be accepted or rejected."},
		{name: "rejected then withdrawn", from: StatusRejected, to: StatusWithdrawn, party: PartyFreelancer, wantErr: ErrTransitionState, wantMsg: "Only pending applications can be withdrawn."},
		{name: "withdrawn edit", from: StatusWithdrawn, to: StatusPending, party: PartyFreelancer, wantErr: ErrTransitionState, wantMsg: "Only pending applications can be updated."},
		{name: "terminal stranger", from: StatusAccepted, to: StatusAccepted, party: PartyNone, wantErr: ErrTransitionState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Decide(tc.from, tc.to, tc.party)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantMsg != "" && err.Error() != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestDecide_NonPendingAlwaysStateError(t *testing.T) {
	parties := []Party{PartyNone, PartyFreelancer, PartyCompany}
	for _, from := range []Status{StatusAccepted, StatusRejected, StatusWithdrawn} {
		for _, to := range AllStatuses {
			for _, p := range parties {
				if err := Decide(from, to, p); !errors.Is(err, ErrTransitionState) {
					t.Fatalf("%s -> %s by %d: expected state error, got %v", from, to, p, err)
				}
			}
		}
	}
}

func TestPartyOf(t *testing.T) {
	freelancerID := uuid.New()
	companyID := uuid.New()
	app := Application{FreelancerID: freelancerID, CompanyID: companyID}

	if got := PartyOf(actor.Freelancer(uuid.New(), freelancerID), app); got != PartyFreelancer {
		t.Fatalf("expected freelancer party, got %d", got)
	}
	if got := PartyOf(actor.Company(uuid.New(), companyID), app); got != PartyCompany {
		t.Fatalf("expected company party, got %d", got)
	}
	if got := PartyOf(actor.Freelancer(uuid.New(), uuid.New()), app); got != PartyNone {
		t.Fatalf("expected no party for another freelancer, got %d", got)
	}
	// a company actor whose profile id happens to equal the freelancer id is still not the freelancer
	if got := PartyOf(actor.Company(uuid.New(), freelancerID), app); got != PartyNone {
		t.Fatalf("expected no party for kind mismatch, got %d", got)
	}
	if got := PartyOf(actor.Anonymous(uuid.New()), app); got != PartyNone {
		t.Fatalf("expected no party for anonymous, got %d", got)
	}
}

func TestComputeStats(t *testing.T) {
	apps := []Application{
		{ProposedRate: 100, Status: StatusPending},
		{ProposedRate: 200, Status: StatusAccepted},
		{ProposedRate: 300, Status: StatusRejected},
	}
	st := ComputeStats(apps)
	if st.AverageRate != 200 {
		t.Fatalf("expected average 200, got %v", st.AverageRate)
	}
	if st.Total != 3 || st.Pending != 1 || st.Accepted != 1 || st.Rejected != 1 || st.Withdrawn != 0 {
		t.Fatalf("unexpected counts: %+v", st)
	}

	if empty := ComputeStats(nil); empty.AverageRate != 0 || empty.Total != 0 {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

func TestNewPageMeta(t *testing.T) {
	m := NewPageMeta(2, 10, 25)
	if m.TotalPages != 3 || !m.HasNext || !m.HasPrev || m.Total != 25 {
		t.Fatalf("unexpected meta: %+v", m)
	}

	last := NewPageMeta(3, 10, 25)
	if last.HasNext || !last.HasPrev {
		t.Fatalf("unexpected last page meta: %+v", last)
	}

	empty := NewPageMeta(1, 10, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("unexpected empty meta: %+v", empty)
	}
}
