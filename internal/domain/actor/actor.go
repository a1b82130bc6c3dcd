// Package actor models who is calling: a freelancer, a company, or nobody in
// particular. It is resolved once per request and passed explicitly.
package actor

import "github.com/google/uuid"

type Kind int

const (
	KindAnonymous Kind = iota
	KindFreelancer
	KindCompany
)

func (k Kind) String() string {
	switch k {
	case KindFreelancer:
		return "freelancer"
	case KindCompany:
		return "company"
	default:
		return "anonymous"
	}
}

// Actor carries the resolved profile id for freelancers and companies.
// Anonymous actors may still carry a UserID when the caller is
// authenticated but has no profile yet.
type Actor struct {
	Kind      Kind
	UserID    uuid.UUID
	ProfileID uuid.UUID
}

func Anonymous(userID uuid.UUID) Actor {
	return Actor{Kind: KindAnonymous, UserID: userID}
}

func Freelancer(userID, profileID uuid.UUID) Actor {
	return Actor{Kind: KindFreelancer, UserID: userID, ProfileID: profileID}
}

func Company(userID, profileID uuid.UUID) Actor {
	return Actor{Kind: KindCompany, UserID: userID, ProfileID: profileID}
}

func (a Actor) IsFreelancer(profileID uuid.UUID) bool {
	return a.Kind == KindFreelancer && profileID != uuid.Nil && a.ProfileID == profileID
}

func (a Actor) IsCompany(profileID uuid.UUID) bool {
	return a.Kind == KindCompany && profileID != uuid.Nil && a.ProfileID == profileID
}
