package model

import "github.com/google/uuid"

// Review is a moderated user review of a language. Vote membership is
// kept as two disjoint sets of voter identities; the score is derived,
// never stored. The sets mutate only through the vote ledger, never
// through generic field updates.
type Review struct {
	BaseModel
	Body       string        `gorm:"type:text;not null" json:"body" validate:"required"`
	LanguageID uuid.UUID     `gorm:"type:uuid;not null;index" json:"language_id" validate:"uuid_required"`
	Language   *Language     `gorm:"foreignKey:LanguageID" json:"language,omitempty" validate:"-"`
	State      ResourceState `gorm:"type:varchar(10);not null;index" json:"state"`
	AuthorID   *uuid.UUID    `gorm:"type:uuid;index" json:"author_id,omitempty"`
	Author     *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty" validate:"-"`
	UpVoters   []User        `gorm:"many2many:review_up_votes;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	DownVoters []User        `gorm:"many2many:review_down_votes;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

// UpVoteIDs returns the identities of up-voters
func (r *Review) UpVoteIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.UpVoters))
	for i, u := range r.UpVoters {
		ids[i] = u.ID
	}
	return ids
}

// DownVoteIDs returns the identities of down-voters
func (r *Review) DownVoteIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.DownVoters))
	for i, u := range r.DownVoters {
		ids[i] = u.ID
	}
	return ids
}

// Score derives the review score from current vote membership
func (r *Review) Score() int {
	return len(r.UpVoters) - len(r.DownVoters)
}

// ReviewResponse is used for API responses, with vote sets flattened to
// voter IDs and the derived score included.
type ReviewResponse struct {
	ID         uuid.UUID     `json:"id"`
	Body       string        `json:"body"`
	LanguageID uuid.UUID     `json:"language_id"`
	State      ResourceState `json:"state"`
	AuthorID   *uuid.UUID    `json:"author_id,omitempty"`
	Author     *UserResponse `json:"author,omitempty"`
	UpVotes    []uuid.UUID   `json:"up_votes"`
	DownVotes  []uuid.UUID   `json:"down_votes"`
	Score      int           `json:"score"`
}

// ToResponse converts Review to ReviewResponse
func (r *Review) ToResponse() ReviewResponse {
	resp := ReviewResponse{
		ID:         r.ID,
		Body:       r.Body,
		LanguageID: r.LanguageID,
		State:      r.State,
		AuthorID:   r.AuthorID,
		UpVotes:    r.UpVoteIDs(),
		DownVotes:  r.DownVoteIDs(),
		Score:      r.Score(),
	}
	if r.Author != nil {
		author := r.Author.ToResponse()
		resp.Author = &author
	}
	return resp
}
