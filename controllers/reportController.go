package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chinmayjoshi03/CivicConnect/httpx"
	"github.com/chinmayjoshi03/CivicConnect/models"
	"github.com/chinmayjoshi03/CivicConnect/services"
)

// ReportService is the report behavior the report endpoints need.
type ReportService interface {
	Submit(ctx context.Context, actorID primitive.ObjectID, in services.SubmitInput) (*services.ReportView, error)
	List(ctx context.Context, actorID primitive.ObjectID, p services.ListParams) (*services.ListResult, error)
	GetByID(ctx context.Context, actorID primitive.ObjectID, idHex string) (*services.ReportDetail, error)
	UpdateStatus(ctx context.Context, actorID primitive.ObjectID, idHex, status, comment string) (*services.ReportView, error)
	AddComment(ctx context.Context, actorID primitive.ObjectID, idHex, text string) (*services.CommentView, error)
}

type ReportController struct {
	service ReportService
}

func NewReportController(service ReportService) *ReportController {
	return &ReportController{service: service}
}

// CreateReport handles the submission of a new report
func (rc *ReportController) CreateReport(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	report, err := rc.service.Submit(ctx, actor, input)
	if err != nil {
		httpx.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted successfully",
		"report":  report,
	})
}

type listReportsQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Status   string `form:"status"`
	Category string `form:"category"`
	UserID   string `form:"userId" binding:"omitempty,objectid"`
}

// GetReports handles listing reports with scoping, filtering and pagination
func (rc *ReportController) GetReports(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		return
	}

	var query listReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := services.ListParams{
		Status:   query.Status,
		Category: query.Category,
		UserID:   query.UserID,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := rc.service.List(ctx, actor, params)
	if err != nil {
		httpx.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReport retrieves a single report by its ID
func (rc *ReportController) GetReport(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	detail, err := rc.service.GetByID(ctx, actor, c.Param("id"))
	if err != nil {
		httpx.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateReportStatus appends a status change to a report's history
func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	report, err := rc.service.UpdateStatus(ctx, actor, c.Param("id"), input.Status, input.Comment)
	if err != nil {
		httpx.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Report status updated successfully",
		"report":  report,
	})
}

// AddReportComment appends a comment to a report
func (rc *ReportController) AddReportComment(c *gin.Context) {
	actor, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext()
	defer cancel()

	comment, err := rc.service.AddComment(ctx, actor, c.Param("id"), input.Text)
	if err != nil {
		httpx.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// GetCategories returns the fixed category enumeration in declaration order
func (rc *ReportController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.CategoryNames()})
}
