package entity

import "time"

// InteractionKind identifies a class of explicit user interaction.
// Each content type has one kind that feeds the collaborative signal:
// bookmarks for articles, topic upvotes for topics, applications for
// jobs, and follows for users.
type InteractionKind string

const (
	InteractionBookmark    InteractionKind = "bookmark"
	InteractionTopicVote   InteractionKind = "topic_vote"
	InteractionReplyVote   InteractionKind = "reply_vote"
	InteractionFollow      InteractionKind = "follow"
	InteractionApplication InteractionKind = "job_application"
)

// ItemRef points at a single content item.
type ItemRef struct {
	Type ContentType
	ID   int64
}

// ContentView is one implicit interaction: a content view with its
// engagement measurements.
type ContentView struct {
	Item        ItemRef
	ReadTime    int // seconds spent reading
	ScrollDepth int // percent of the page scrolled, 0-100
	ViewedAt    time.Time
}

// Profile carries the user's declared interests.
type Profile struct {
	Skills        []string
	DesiredRoles  []string
	DesiredSkills []string
}

// ExplicitInteractions groups a user's explicit interactions by kind.
// Empty slices are legitimate: a user with no bookmarks simply has none.
type ExplicitInteractions struct {
	Bookmarks       []ItemRef
	TopicVotes      []ItemRef // upvotes only (value > 0)
	ReplyVotes      []ItemRef // upvotes only (value > 0)
	Follows         []int64   // followed user IDs
	JobApplications []int64   // applied job IDs
}

// Items returns every explicitly interacted item as a flat list.
// Follows and applications are mapped onto their item refs.
func (e *ExplicitInteractions) Items() []ItemRef {
	out := make([]ItemRef, 0,
		len(e.Bookmarks)+len(e.TopicVotes)+len(e.ReplyVotes)+len(e.Follows)+len(e.JobApplications))
	out = append(out, e.Bookmarks...)
	out = append(out, e.TopicVotes...)
	out = append(out, e.ReplyVotes...)
	for _, id := range e.Follows {
		out = append(out, ItemRef{Type: ContentTypeUser, ID: id})
	}
	for _, id := range e.JobApplications {
		out = append(out, ItemRef{Type: ContentTypeJob, ID: id})
	}
	return out
}

// InteractionSignals is the per-user snapshot consumed by one
// recommendation computation. It is built fresh on every cache miss and
// never mutated afterwards.
type InteractionSignals struct {
	UserID   int64
	Explicit ExplicitInteractions
	Views    []ContentView
	Profile  Profile
}

// Neighbor is a user ranked by interaction overlap with the subject.
// Similarity is the fraction of the subject's explicit items the
// neighbor also interacted with, so it lives in [0,1] and is asymmetric
// between the two users.
type Neighbor struct {
	UserID     int64
	Similarity float64
}

// Source identifies which generator produced a candidate.
type Source string

const (
	SourceCollaborative Source = "collaborative"
	SourceContent       Source = "content"
	SourceTrending      Source = "trending"
)

// Candidate is one item scored by a single generator before merging.
// Score is already normalized to 0-100 and scaled by the source weight.
type Candidate struct {
	ItemID int64
	Score  float64
	Source Source
}
