// Package services holds the business rules between controllers and
// repositories. Services validate input, enforce the authorization policy
// and shape response projections; controllers only translate HTTP.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chinmayjoshi03/CivicConnect/authz"
	"github.com/chinmayjoshi03/CivicConnect/classifier"
	"github.com/chinmayjoshi03/CivicConnect/httpx"
	"github.com/chinmayjoshi03/CivicConnect/logger"
	"github.com/chinmayjoshi03/CivicConnect/models"
	"github.com/chinmayjoshi03/CivicConnect/repositories"
	"github.com/chinmayjoshi03/CivicConnect/utils"
)

// ReportStore is the slice of repository behavior ReportService needs.
type ReportStore interface {
	Insert(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	Find(ctx context.Context, f repositories.ListFilter, page, limit int) ([]models.Report, int64, error)
	AppendStatus(ctx context.Context, id primitive.ObjectID, entry models.StatusEntry) error
	AppendComment(ctx context.Context, id primitive.ObjectID, comment models.Comment) error
}

type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type DepartmentStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
}

// SubmitInput is the payload for a new report. The category must already be
// resolved, either client-side or through a preceding classify call.
type SubmitInput struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Severity    string          `json:"severity"`
	Images      []string        `json:"images"`
	Location    models.Location `json:"location"`
}

// ListParams are the query knobs for List. UserID narrows to one owner and
// is honored for admins only.
type ListParams struct {
	Status   string
	Category string
	UserID   string
	Page     int
	Limit    int
}

// OwnerRef is the joined owner summary embedded in report projections.
type OwnerRef struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// ReportView is a report with its owner joined. The embedded struct's raw
// owner ID is shadowed by the joined value.
type ReportView struct {
	models.Report
	Owner OwnerRef `json:"user"`
}

// DepartmentRef is the joined department summary on a report detail.
type DepartmentRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// AuthorRef is the joined comment author summary.
type AuthorRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// CommentView is a comment with its author joined.
type CommentView struct {
	Author    AuthorRef `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportDetail is the single-report projection. TimeSinceSubmission, CanEdit
// and IsOwnReport are response-shaping only, derived per requester.
type ReportDetail struct {
	models.Report
	Owner               OwnerRef       `json:"user"`
	Department          *DepartmentRef `json:"department,omitempty"`
	Comments            []CommentView  `json:"comments"`
	TimeSinceSubmission string         `json:"timeSinceSubmission"`
	CanEdit             bool           `json:"canEdit"`
	IsOwnReport         bool           `json:"isOwnReport"`
}

// Pagination is the page metadata returned by List.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ListFilters echoes the filters the query actually applied.
type ListFilters struct {
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
	User     string `json:"user,omitempty"`
}

// ListResult is one page of reports with pagination metadata.
type ListResult struct {
	Reports    []ReportView `json:"reports"`
	Pagination Pagination   `json:"pagination"`
	Filters    ListFilters  `json:"filters"`
}

type ReportService struct {
	reports     ReportStore
	users       UserStore
	departments DepartmentStore
	log         *logger.Logger
}

func NewReportService(reports ReportStore, users UserStore, departments DepartmentStore, log *logger.Logger) *ReportService {
	return &ReportService{reports: reports, users: users, departments: departments, log: log}
}

// Submit validates and persists a new report for the acting user. The report
// starts as Submitted with a single seeded history entry attributed to the
// system.
func (s *ReportService) Submit(ctx context.Context, actorID primitive.ObjectID, in SubmitInput) (*ReportView, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Severity = strings.TrimSpace(in.Severity)
	in.Location.Address = strings.TrimSpace(in.Location.Address)

	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	if in.Description == "" {
		return nil, httpx.Validation("Description is required")
	}
	if len(images) == 0 {
		return nil, httpx.Validation("At least one image is required")
	}
	if in.Category == "" {
		return nil, httpx.ValidationValues("Category is required", models.CategoryNames())
	}
	if !models.ValidCategory(in.Category) {
		return nil, httpx.ValidationValues("Invalid category", models.CategoryNames())
	}
	if in.Location.Address == "" {
		return nil, httpx.Validation("Location address is required")
	}
	if in.Location.Latitude < -90 || in.Location.Latitude > 90 {
		return nil, httpx.Validation("Latitude must be between -90 and 90")
	}
	if in.Location.Longitude < -180 || in.Location.Longitude > 180 {
		return nil, httpx.Validation("Longitude must be between -180 and 180")
	}

	now := time.Now()
	report := &models.Report{
		ID:          primitive.NewObjectID(),
		User:        actor.ID,
		Description: in.Description,
		Location:    in.Location,
		Images:      images,
		Category:    models.ReportCategory(in.Category),
		Severity:    classifier.NormalizeSeverity(in.Severity),
		Status:      models.Submitted,
		StatusHistory: []models.StatusEntry{{
			Status:    models.Submitted,
			By:        models.SystemActor,
			Comment:   "Report submitted by user",
			Timestamp: now,
		}},
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reports.Insert(ctx, report); err != nil {
		return nil, httpx.Internal(err)
	}

	s.log.WithFields(logrus.Fields{
		"report_id": report.ID.Hex(),
		"user_id":   actor.ID.Hex(),
		"category":  report.Category,
	}).Info("report submitted")

	return &ReportView{Report: *report, Owner: ownerRef(actor)}, nil
}

// List returns one page of reports visible to the acting user, newest first.
// Citizens always see only their own reports; admins see all and may narrow
// to a single owner.
func (s *ReportService) List(ctx context.Context, actorID primitive.ObjectID, p ListParams) (*ListResult, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}

	owner, err := authz.Scope(actor, strings.TrimSpace(p.UserID))
	if err != nil {
		return nil, httpx.Validation("Invalid user ID filter")
	}

	filter := repositories.ListFilter{
		User:     owner,
		Status:   strings.TrimSpace(p.Status),
		Category: strings.TrimSpace(p.Category),
	}

	reports, total, err := s.reports.Find(ctx, filter, page, limit)
	if err != nil {
		return nil, httpx.Internal(err)
	}

	owners := map[primitive.ObjectID]OwnerRef{}
	views := make([]ReportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, ReportView{Report: r, Owner: s.ownerRefFor(ctx, r.User, owners)})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	filters := ListFilters{Status: filter.Status, Category: filter.Category}
	if owner != nil {
		filters.User = owner.Hex()
	}

	return &ListResult{
		Reports: views,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
		Filters: filters,
	}, nil
}

// GetByID returns the enriched detail projection of one report, after the
// authorization policy allows the acting user to see it.
func (s *ReportService) GetByID(ctx context.Context, actorID primitive.ObjectID, idHex string) (*ReportDetail, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, httpx.Validation("Invalid report ID")
	}

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("Report not found")
		}
		return nil, httpx.Internal(err)
	}

	if !authz.CanView(actor, report) {
		return nil, httpx.Forbidden("You are not authorized to view this report")
	}

	detail := &ReportDetail{
		Report:              *report,
		Owner:               s.ownerRefFor(ctx, report.User, map[primitive.ObjectID]OwnerRef{}),
		Comments:            s.commentViews(ctx, report.Comments),
		TimeSinceSubmission: utils.TimeSince(report.CreatedAt, time.Now()),
		CanEdit:             authz.CanEdit(actor, report),
		IsOwnReport:         authz.IsOwner(actor, report),
	}

	if report.Department != nil {
		if dept, err := s.departments.FindByID(ctx, *report.Department); err == nil {
			detail.Department = &DepartmentRef{ID: dept.ID, Name: dept.Name}
		}
	}

	return detail, nil
}

// UpdateStatus appends one status change to the report's history and moves
// the current status with it. Any enum status may follow any other; the
// history records the sequence.
func (s *ReportService) UpdateStatus(ctx context.Context, actorID primitive.ObjectID, idHex, status, comment string) (*ReportView, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, httpx.Validation("Invalid report ID")
	}

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("Report not found")
		}
		return nil, httpx.Internal(err)
	}

	if !authz.CanEdit(actor, report) {
		return nil, httpx.Forbidden("You are not authorized to update this report")
	}

	status = strings.TrimSpace(status)
	if !models.ValidStatus(status) {
		return nil, httpx.ValidationValues("Invalid status", models.StatusNames())
	}

	entry := models.StatusEntry{
		Status:    models.ReportStatus(status),
		By:        actor.Name,
		Comment:   strings.TrimSpace(comment),
		Timestamp: time.Now(),
	}

	if err := s.reports.AppendStatus(ctx, id, entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("Report not found")
		}
		return nil, httpx.Internal(err)
	}

	report.Status = entry.Status
	report.StatusHistory = append(report.StatusHistory, entry)
	report.UpdatedAt = entry.Timestamp

	s.log.WithFields(logrus.Fields{
		"report_id": report.ID.Hex(),
		"user_id":   actor.ID.Hex(),
		"status":    entry.Status,
	}).Info("report status updated")

	return &ReportView{Report: *report, Owner: s.ownerRefFor(ctx, report.User, map[primitive.ObjectID]OwnerRef{})}, nil
}

// AddComment appends one comment to a report the acting user can view.
func (s *ReportService) AddComment(ctx context.Context, actorID primitive.ObjectID, idHex, text string) (*CommentView, error) {
	actor, err := s.loadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, httpx.Validation("Invalid report ID")
	}

	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("Report not found")
		}
		return nil, httpx.Internal(err)
	}

	if !authz.CanView(actor, report) {
		return nil, httpx.Forbidden("You are not authorized to comment on this report")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, httpx.Validation("Comment text is required")
	}

	comment := models.Comment{
		Author:    actor.ID,
		Text:      text,
		Timestamp: time.Now(),
	}

	if err := s.reports.AppendComment(ctx, id, comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("Report not found")
		}
		return nil, httpx.Internal(err)
	}

	return &CommentView{
		Author:    AuthorRef{ID: actor.ID, Name: actor.Name},
		Text:      comment.Text,
		Timestamp: comment.Timestamp,
	}, nil
}

func (s *ReportService) loadActor(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	actor, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httpx.NotFound("User not found")
		}
		return nil, httpx.Internal(err)
	}
	return actor, nil
}

// ownerRefFor joins the owner summary, memoizing lookups within one request.
// A failed lookup degrades to the bare ID rather than failing the read.
func (s *ReportService) ownerRefFor(ctx context.Context, id primitive.ObjectID, memo map[primitive.ObjectID]OwnerRef) OwnerRef {
	if ref, ok := memo[id]; ok {
		return ref
	}

	ref := OwnerRef{ID: id}
	if user, err := s.users.FindByID(ctx, id); err == nil {
		ref.Name = user.Name
		ref.Email = user.Email
	}

	memo[id] = ref
	return ref
}

func (s *ReportService) commentViews(ctx context.Context, comments []models.Comment) []CommentView {
	authors := map[primitive.ObjectID]AuthorRef{}
	views := make([]CommentView, 0, len(comments))

	for _, cm := range comments {
		ref, ok := authors[cm.Author]
		if !ok {
			ref = AuthorRef{ID: cm.Author}
			if user, err := s.users.FindByID(ctx, cm.Author); err == nil {
				ref.Name = user.Name
			}
			authors[cm.Author] = ref
		}
		views = append(views, CommentView{Author: ref, Text: cm.Text, Timestamp: cm.Timestamp})
	}

	return views
}

func ownerRef(u *models.User) OwnerRef {
	return OwnerRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
