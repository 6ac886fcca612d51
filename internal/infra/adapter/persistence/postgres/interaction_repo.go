// Package postgres implements the engine's repository ports on
// PostgreSQL. The interaction tables belong to other subsystems and are
// only read here; feedback is the one table this package writes.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"reco-engine/internal/domain/entity"
	"reco-engine/internal/repository"
	"reco-engine/internal/resilience/retry"
)

type InteractionRepo struct {
	db       *sql.DB
	retryCfg retry.Config
}

func NewInteractionRepo(db *sql.DB) repository.InteractionRepository {
	return &InteractionRepo{db: db, retryCfg: retry.DBConfig()}
}

// withRetry retries transient connection errors on the required-input
// reads. Generator-path reads skip it: they already degrade gracefully.
func (repo *InteractionRepo) withRetry(ctx context.Context, fn func() error) error {
	return retry.WithBackoff(ctx, repo.retryCfg, fn)
}

func (repo *InteractionRepo) GetExplicitInteractions(ctx context.Context, userID int64, limit int) (*entity.ExplicitInteractions, error) {
	const bookmarksQuery = `
SELECT article_id FROM bookmarks
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`
	const topicVotesQuery = `
SELECT topic_id FROM topic_votes
WHERE user_id = $1 AND value > 0
ORDER BY created_at DESC
LIMIT $2`
	const replyVotesQuery = `
SELECT r.topic_id
FROM reply_votes rv
INNER JOIN replies r ON r.id = rv.reply_id
WHERE rv.user_id = $1 AND rv.value > 0
ORDER BY rv.created_at DESC
LIMIT $2`
	const followsQuery = `
SELECT followee_id FROM follows
WHERE follower_id = $1
ORDER BY created_at DESC
LIMIT $2`
	const applicationsQuery = `
SELECT job_id FROM job_applications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	var out *entity.ExplicitInteractions
	err := repo.withRetry(ctx, func() error {
		bookmarks, err := repo.itemRefs(ctx, bookmarksQuery, entity.ContentTypeArticle, userID, limit)
		if err != nil {
			return fmt.Errorf("bookmarks: %w", err)
		}
		topicVotes, err := repo.itemRefs(ctx, topicVotesQuery, entity.ContentTypeTopic, userID, limit)
		if err != nil {
			return fmt.Errorf("topic votes: %w", err)
		}
		replyVotes, err := repo.itemRefs(ctx, replyVotesQuery, entity.ContentTypeTopic, userID, limit)
		if err != nil {
			return fmt.Errorf("reply votes: %w", err)
		}
		follows, err := repo.idList(ctx, followsQuery, userID, limit)
		if err != nil {
			return fmt.Errorf("follows: %w", err)
		}
		applications, err := repo.idList(ctx, applicationsQuery, userID, limit)
		if err != nil {
			return fmt.Errorf("job applications: %w", err)
		}
		out = &entity.ExplicitInteractions{
			Bookmarks:       bookmarks,
			TopicVotes:      topicVotes,
			ReplyVotes:      replyVotes,
			Follows:         follows,
			JobApplications: applications,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("GetExplicitInteractions: %w", err)
	}
	return out, nil
}

func (repo *InteractionRepo) itemRefs(ctx context.Context, query string, contentType entity.ContentType, userID int64, limit int) ([]entity.ItemRef, error) {
	rows, err := repo.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	refs := make([]entity.ItemRef, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		refs = append(refs, entity.ItemRef{Type: contentType, ID: id})
	}
	return refs, rows.Err()
}

func (repo *InteractionRepo) idList(ctx context.Context, query string, userID int64, limit int) ([]int64, error) {
	rows, err := repo.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (repo *InteractionRepo) GetImplicitInteractions(ctx context.Context, userID int64, daysAgo int) ([]entity.ContentView, error) {
	const query = `
SELECT content_type, content_id, read_time, scroll_depth, viewed_at
FROM content_views
WHERE user_id = $1 AND viewed_at >= $2
ORDER BY viewed_at DESC`

	since := time.Now().AddDate(0, 0, -daysAgo)
	var views []entity.ContentView
	err := repo.withRetry(ctx, func() error {
		rows, err := repo.db.QueryContext(ctx, query, userID, since)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		views = make([]entity.ContentView, 0, 100)
		for rows.Next() {
			var v entity.ContentView
			var contentType string
			if err := rows.Scan(&contentType, &v.Item.ID, &v.ReadTime, &v.ScrollDepth, &v.ViewedAt); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			v.Item.Type = entity.ContentType(contentType)
			views = append(views, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("GetImplicitInteractions: %w", err)
	}
	return views, nil
}

func (repo *InteractionRepo) GetProfile(ctx context.Context, userID int64) (*entity.Profile, error) {
	const query = `
SELECT skills, desired_roles, desired_skills
FROM user_profiles
WHERE user_id = $1`

	var profile entity.Profile
	err := repo.withRetry(ctx, func() error {
		var skills, roles, desired pq.StringArray
		err := repo.db.QueryRowContext(ctx, query, userID).Scan(&skills, &roles, &desired)
		if errors.Is(err, sql.ErrNoRows) {
			// No declared profile is fine; content matching just has
			// fewer interests to work with.
			return nil
		}
		if err != nil {
			return err
		}
		profile = entity.Profile{Skills: skills, DesiredRoles: roles, DesiredSkills: desired}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("GetProfile: %w", err)
	}
	return &profile, nil
}

func (repo *InteractionRepo) FindSimilarUsers(ctx context.Context, userID int64, limit int) ([]repository.UserOverlap, error) {
	// One unified view over every explicit interaction kind, so users
	// overlapping across kinds are counted once per shared item.
	const query = `
WITH interactions AS (
	SELECT user_id, 'article' AS content_type, article_id AS content_id FROM bookmarks
	UNION ALL
	SELECT user_id, 'topic', topic_id FROM topic_votes WHERE value > 0
	UNION ALL
	SELECT rv.user_id, 'topic', r.topic_id
	FROM reply_votes rv INNER JOIN replies r ON r.id = rv.reply_id
	WHERE rv.value > 0
	UNION ALL
	SELECT follower_id, 'user', followee_id FROM follows
	UNION ALL
	SELECT user_id, 'job', job_id FROM job_applications
)
SELECT o.user_id, COUNT(DISTINCT (o.content_type, o.content_id)) AS overlap
FROM interactions o
INNER JOIN interactions s
	ON s.content_type = o.content_type AND s.content_id = o.content_id
WHERE s.user_id = $1 AND o.user_id <> $1
GROUP BY o.user_id
ORDER BY overlap DESC, o.user_id
LIMIT $2`

	var overlaps []repository.UserOverlap
	err := repo.withRetry(ctx, func() error {
		rows, err := repo.db.QueryContext(ctx, query, userID, limit)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		overlaps = make([]repository.UserOverlap, 0, limit)
		for rows.Next() {
			var o repository.UserOverlap
			if err := rows.Scan(&o.UserID, &o.Overlap); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			overlaps = append(overlaps, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("FindSimilarUsers: %w", err)
	}
	return overlaps, nil
}

// interactionQueries maps each interaction kind to its (user, item)
// pair query. Adding a kind means adding an entry here.
var interactionQueries = map[entity.InteractionKind]string{
	entity.InteractionBookmark: `
SELECT user_id, article_id FROM bookmarks WHERE user_id = ANY($1)`,
	entity.InteractionTopicVote: `
SELECT user_id, topic_id FROM topic_votes WHERE user_id = ANY($1) AND value > 0`,
	entity.InteractionReplyVote: `
SELECT rv.user_id, r.topic_id
FROM reply_votes rv INNER JOIN replies r ON r.id = rv.reply_id
WHERE rv.user_id = ANY($1) AND rv.value > 0`,
	entity.InteractionFollow: `
SELECT follower_id, followee_id FROM follows WHERE follower_id = ANY($1)`,
	entity.InteractionApplication: `
SELECT user_id, job_id FROM job_applications WHERE user_id = ANY($1)`,
}

func (repo *InteractionRepo) GetInteractionsByUsers(ctx context.Context, userIDs []int64, kind entity.InteractionKind) ([]repository.UserItem, error) {
	query, ok := interactionQueries[kind]
	if !ok {
		return nil, fmt.Errorf("GetInteractionsByUsers: unknown interaction kind %q", kind)
	}
	if len(userIDs) == 0 {
		return nil, nil
	}

	rows, err := repo.db.QueryContext(ctx, query, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("GetInteractionsByUsers(%s): %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]repository.UserItem, 0, len(userIDs)*4)
	for rows.Next() {
		var it repository.UserItem
		if err := rows.Scan(&it.UserID, &it.ItemID); err != nil {
			return nil, fmt.Errorf("GetInteractionsByUsers(%s): scan: %w", kind, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (repo *InteractionRepo) GetContentTags(ctx context.Context, items []entity.ItemRef) ([]string, []string, error) {
	if len(items) == 0 {
		return nil, nil, nil
	}
	const tagsQuery = `
SELECT DISTINCT ct.tag
FROM content_tags ct
INNER JOIN unnest($1::text[], $2::bigint[]) AS item(content_type, content_id)
	ON ct.content_type = item.content_type AND ct.content_id = item.content_id
ORDER BY ct.tag`
	const categoriesQuery = `
SELECT DISTINCT cc.category
FROM content_categories cc
INNER JOIN unnest($1::text[], $2::bigint[]) AS item(content_type, content_id)
	ON cc.content_type = item.content_type AND cc.content_id = item.content_id
ORDER BY cc.category`

	types := make([]string, len(items))
	ids := make([]int64, len(items))
	for i, it := range items {
		types[i] = string(it.Type)
		ids[i] = it.ID
	}

	tags, err := repo.stringList(ctx, tagsQuery, pq.Array(types), pq.Array(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("GetContentTags: tags: %w", err)
	}
	categories, err := repo.stringList(ctx, categoriesQuery, pq.Array(types), pq.Array(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("GetContentTags: categories: %w", err)
	}
	return tags, categories, nil
}

func (repo *InteractionRepo) stringList(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// tagMatchQuery scores article and topic items by how many of the
// user's tags and categories they carry.
const tagMatchQuery = `
SELECT matched.content_id, COUNT(*) AS strength
FROM (
	SELECT content_id FROM content_tags
	WHERE content_type = $1 AND tag = ANY($2)
	UNION ALL
	SELECT content_id FROM content_categories
	WHERE content_type = $1 AND category = ANY($3)
) matched
GROUP BY matched.content_id
ORDER BY strength DESC, matched.content_id
LIMIT $4`

// skillMatchQueries score jobs and users by overlapping skills.
var skillMatchQueries = map[entity.ContentType]string{
	entity.ContentTypeJob: `
SELECT job_id, COUNT(*) AS strength
FROM job_skills
WHERE LOWER(skill) = ANY($1)
GROUP BY job_id
ORDER BY strength DESC, job_id
LIMIT $2`,
	entity.ContentTypeUser: `
SELECT user_id, COUNT(*) AS strength
FROM user_skills
WHERE LOWER(skill) = ANY($1)
GROUP BY user_id
ORDER BY strength DESC, user_id
LIMIT $2`,
}

func (repo *InteractionRepo) FindMatchingContent(ctx context.Context, contentType entity.ContentType, interests repository.InterestSet, limit int) ([]repository.ContentMatch, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if query, ok := skillMatchQueries[contentType]; ok {
		if len(interests.Skills) == 0 {
			return nil, nil
		}
		rows, err = repo.db.QueryContext(ctx, query, pq.Array(interests.Skills), limit)
	} else {
		if len(interests.Tags) == 0 && len(interests.Categories) == 0 {
			return nil, nil
		}
		rows, err = repo.db.QueryContext(ctx, tagMatchQuery,
			string(contentType), pq.Array(interests.Tags), pq.Array(interests.Categories), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("FindMatchingContent(%s): %w", contentType, err)
	}
	defer func() { _ = rows.Close() }()

	matches := make([]repository.ContentMatch, 0, limit)
	for rows.Next() {
		var m repository.ContentMatch
		if err := rows.Scan(&m.ItemID, &m.Strength); err != nil {
			return nil, fmt.Errorf("FindMatchingContent(%s): scan: %w", contentType, err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// trendingQueries rank each content type by its own popularity measure:
// views plus bookmarks for articles, upvotes plus replies for topics,
// views plus applications for jobs, and new followers for users.
var trendingQueries = map[entity.ContentType]string{
	entity.ContentTypeArticle: `
SELECT a.id
FROM articles a
LEFT JOIN (
	SELECT content_id, COUNT(*) AS n FROM content_views
	WHERE content_type = 'article' AND viewed_at >= $1 GROUP BY content_id
) v ON v.content_id = a.id
LEFT JOIN (
	SELECT article_id, COUNT(*) AS n FROM bookmarks
	WHERE created_at >= $1 GROUP BY article_id
) b ON b.article_id = a.id
WHERE a.published_at >= $1 OR COALESCE(v.n, 0) + COALESCE(b.n, 0) > 0
ORDER BY COALESCE(v.n, 0) + COALESCE(b.n, 0) DESC, a.id
LIMIT $2`,
	entity.ContentTypeTopic: `
SELECT t.id
FROM topics t
LEFT JOIN (
	SELECT topic_id, COUNT(*) AS n FROM topic_votes
	WHERE value > 0 AND created_at >= $1 GROUP BY topic_id
) v ON v.topic_id = t.id
LEFT JOIN (
	SELECT topic_id, COUNT(*) AS n FROM replies
	WHERE created_at >= $1 GROUP BY topic_id
) r ON r.topic_id = t.id
WHERE t.created_at >= $1 OR COALESCE(v.n, 0) + COALESCE(r.n, 0) > 0
ORDER BY COALESCE(v.n, 0) + COALESCE(r.n, 0) DESC, t.id
LIMIT $2`,
	entity.ContentTypeJob: `
SELECT j.id
FROM jobs j
LEFT JOIN (
	SELECT content_id, COUNT(*) AS n FROM content_views
	WHERE content_type = 'job' AND viewed_at >= $1 GROUP BY content_id
) v ON v.content_id = j.id
LEFT JOIN (
	SELECT job_id, COUNT(*) AS n FROM job_applications
	WHERE created_at >= $1 GROUP BY job_id
) a ON a.job_id = j.id
WHERE j.posted_at >= $1 OR COALESCE(v.n, 0) + COALESCE(a.n, 0) > 0
ORDER BY COALESCE(v.n, 0) + COALESCE(a.n, 0) DESC, j.id
LIMIT $2`,
	entity.ContentTypeUser: `
SELECT followee_id
FROM follows
WHERE created_at >= $1
GROUP BY followee_id
ORDER BY COUNT(*) DESC, followee_id
LIMIT $2`,
}

func (repo *InteractionRepo) GetTrendingContent(ctx context.Context, contentType entity.ContentType, since time.Time, limit int) ([]int64, error) {
	query, ok := trendingQueries[contentType]
	if !ok {
		return nil, fmt.Errorf("GetTrendingContent: unknown content type %q", contentType)
	}

	rows, err := repo.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("GetTrendingContent(%s): %w", contentType, err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, limit)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("GetTrendingContent(%s): scan: %w", contentType, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// contentQueries resolve item IDs into display records. Every query
// yields the same column shape: id, title, summary, author id, author
// name, tags, created at.
var contentQueries = map[entity.ContentType]string{
	entity.ContentTypeArticle: `
SELECT a.id, a.title, a.summary, a.author_id, u.name, a.published_at,
	COALESCE(ARRAY(
		SELECT tag FROM content_tags
		WHERE content_type = 'article' AND content_id = a.id ORDER BY tag
	), '{}')
FROM articles a
INNER JOIN users u ON u.id = a.author_id
WHERE a.id = ANY($1)`,
	entity.ContentTypeTopic: `
SELECT t.id, t.title, t.body_excerpt, t.author_id, u.name, t.created_at,
	COALESCE(ARRAY(
		SELECT tag FROM content_tags
		WHERE content_type = 'topic' AND content_id = t.id ORDER BY tag
	), '{}')
FROM topics t
INNER JOIN users u ON u.id = t.author_id
WHERE t.id = ANY($1)`,
	entity.ContentTypeJob: `
SELECT j.id, j.title, j.description_excerpt, j.company_id, c.name, j.posted_at,
	COALESCE(ARRAY(
		SELECT skill FROM job_skills WHERE job_id = j.id ORDER BY skill
	), '{}')
FROM jobs j
INNER JOIN companies c ON c.id = j.company_id
WHERE j.id = ANY($1)`,
	entity.ContentTypeUser: `
SELECT u.id, u.name, COALESCE(u.headline, ''), u.id, u.name, u.created_at,
	COALESCE(ARRAY(
		SELECT skill FROM user_skills WHERE user_id = u.id ORDER BY skill
	), '{}')
FROM users u
WHERE u.id = ANY($1)`,
}

func (repo *InteractionRepo) GetContentByIDs(ctx context.Context, contentType entity.ContentType, ids []int64) ([]*entity.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, ok := contentQueries[contentType]
	if !ok {
		return nil, fmt.Errorf("GetContentByIDs: unknown content type %q", contentType)
	}

	rows, err := repo.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("GetContentByIDs(%s): %w", contentType, err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*entity.Content, 0, len(ids))
	for rows.Next() {
		var c entity.Content
		var tags pq.StringArray
		if err := rows.Scan(&c.ID, &c.Title, &c.Summary, &c.AuthorID, &c.AuthorName, &c.CreatedAt, &tags); err != nil {
			return nil, fmt.Errorf("GetContentByIDs(%s): scan: %w", contentType, err)
		}
		c.Type = contentType
		c.Tags = tags
		records = append(records, &c)
	}
	return records, rows.Err()
}
