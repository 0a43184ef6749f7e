package handlers

import (
	"errors"
	"net/http"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler handles the email address endpoints
type EmailHandler struct {
	emailService EmailServiceInterface
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService EmailServiceInterface) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

func (h *EmailHandler) List(c *gin.Context) {
	emails, err := h.emailService.ListEmails()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emails)
}

func (h *EmailHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	email, err := h.emailService.GetEmail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *EmailHandler) Create(c *gin.Context) {
	var req models.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	email, err := h.emailService.CreateEmail(req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Email address created", zap.Int64("id", email.ID))
	c.JSON(http.StatusCreated, email)
}

func (h *EmailHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	email, err := h.emailService.UpdateEmail(id, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *EmailHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.emailService.DeleteEmail(id); err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Email address deleted", zap.Int64("id", id))
	c.Status(http.StatusNoContent)
}

// PhoneContactHandler handles the phone contact endpoints
type PhoneContactHandler struct {
	contactService PhoneContactServiceInterface
}

// NewPhoneContactHandler creates a new phone contact handler
func NewPhoneContactHandler(contactService PhoneContactServiceInterface) *PhoneContactHandler {
	return &PhoneContactHandler{contactService: contactService}
}

func (h *PhoneContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.ListPhoneContacts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *PhoneContactHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	contact, err := h.contactService.GetPhoneContact(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *PhoneContactHandler) Create(c *gin.Context) {
	var req models.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	contact, err := h.contactService.CreatePhoneContact(req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Phone contact created", zap.Int64("id", contact.ID))
	c.JSON(http.StatusCreated, contact)
}

func (h *PhoneContactHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	contact, err := h.contactService.UpdatePhoneContact(id, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *PhoneContactHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.contactService.DeletePhoneContact(id); err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Phone contact deleted", zap.Int64("id", id))
	c.Status(http.StatusNoContent)
}

// AboutHandler handles the about text, the public site data and the tuning defaults
type AboutHandler struct {
	aboutService    AboutServiceInterface
	publicService   PublicServiceInterface
	propertyService PropertyServiceInterface
}

// NewAboutHandler creates a new about handler
func NewAboutHandler(about AboutServiceInterface, public PublicServiceInterface, properties PropertyServiceInterface) *AboutHandler {
	return &AboutHandler{
		aboutService:    about,
		publicService:   public,
		propertyService: properties,
	}
}

// Get handles GET /about/
func (h *AboutHandler) Get(c *gin.Context) {
	about, err := h.aboutService.GetAbout()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

// Update handles PUT /about/
func (h *AboutHandler) Update(c *gin.Context) {
	var req models.AboutUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	about, err := h.aboutService.UpdateAbout(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("About updated")
	c.JSON(http.StatusOK, about)
}

// Upload handles POST /about/upload with a multipart "file" and optional "field" and "encoding"
func (h *AboutHandler) Upload(c *gin.Context) {
	logger.Info("About upload endpoint called")

	header, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(c, err)
			return
		}
		badRequest(c, "File is required", err)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	about, err := h.aboutService.UploadAbout(header.Filename, file, c.PostForm("field"), c.PostForm("encoding"))
	if err != nil {
		logger.Warn("About upload rejected", zap.String("filename", header.Filename), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

// PublicAbout handles GET /public/about
func (h *AboutHandler) PublicAbout(c *gin.Context) {
	about, err := h.publicService.GetPublicAbout()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

// ContactStatus handles GET /public/contact-status
func (h *AboutHandler) ContactStatus(c *gin.Context) {
	status, err := h.publicService.GetContactStatus()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetDefaults handles GET /dashboard/assistant/defaults
func (h *AboutHandler) GetDefaults(c *gin.Context) {
	prop, err := h.propertyService.GetDefaults()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

// UpdateDefaults handles PUT /dashboard/assistant/defaults
func (h *AboutHandler) UpdateDefaults(c *gin.Context) {
	var req models.TuningPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Values must be integers between 0 and 100", err)
		return
	}
	prop, err := h.propertyService.UpdateDefaults(*req.Humor, *req.Flexibility, *req.GoalFocus)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Tuning defaults updated",
		zap.Int("humor", prop.Humor),
		zap.Int("flexibility", prop.Flexibility),
		zap.Int("goal_focus", prop.GoalFocus))
	c.JSON(http.StatusOK, prop)
}
