// internal/app/features/admin/admin.go
package admin

import (
	"net/http"
	"strconv"
	"strings"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	contactstore "github.com/seftonweb/southportlocal/internal/app/store/contactlog"
	"github.com/seftonweb/southportlocal/internal/app/system/auth"
	"github.com/seftonweb/southportlocal/internal/app/system/htmlsanitize"
	"github.com/seftonweb/southportlocal/internal/app/system/inputval"
	"github.com/seftonweb/southportlocal/internal/app/system/normalize"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the admin area: operator sign-in and listing management.
// There is a single operator account, configured by email and bcrypt hash.
type Handler struct {
	businesses   *businessstore.Store
	categories   *categorystore.Store
	contacts     *contactstore.Store
	sessionMgr   *auth.SessionManager
	errLog       *errorsfeature.ErrorLogger
	adminEmail   string
	passwordHash string
	logger       *zap.Logger
}

// NewHandler creates a new admin Handler.
func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	adminEmail, passwordHash string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		businesses:   businessstore.New(db),
		categories:   categorystore.New(db),
		contacts:     contactstore.New(db),
		sessionMgr:   sessionMgr,
		errLog:       errLog,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Routes returns a chi.Router with admin routes mounted at /admin. Everything
// except the login pair sits behind RequireAdmin.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/login", h.ShowLogin)
	r.Post("/login", h.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.sessionMgr.RequireAdmin)

		r.Get("/", h.Dashboard)
		r.Post("/logout", h.HandleLogout)

		r.Get("/businesses", h.ListBusinesses)
		r.Get("/businesses/new", h.NewBusiness)
		r.Post("/businesses", h.SaveBusiness)
		r.Get("/businesses/{slug}/edit", h.EditBusiness)

		r.Get("/contacts", h.ListContacts)
	})

	return r
}

/*───────────────────────────── sign-in ─────────────────────────────*/

// LoginVM is the view model for the login page.
type LoginVM struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

// ShowLogin renders the operator login form.
func (h *Handler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentAdmin(r); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	vm := LoginVM{
		BaseVM:    viewdata.NewAdminVM(r, "Sign In"),
		ReturnURL: normalize.QueryParam(r.URL.Query().Get("return")),
	}
	templates.Render(w, r, "admin/login", vm)
}

// HandleLogin checks the configured operator credentials and starts a session.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse login form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if email != strings.ToLower(h.adminEmail) || !auth.CheckPassword(h.passwordHash, password) {
		vm := LoginVM{
			BaseVM:    viewdata.NewAdminVM(r, "Sign In"),
			Error:     "Incorrect email or password.",
			Email:     email,
			ReturnURL: returnURL,
		}
		w.WriteHeader(http.StatusUnauthorized)
		templates.Render(w, r, "admin/login", vm)
		return
	}

	if err := h.sessionMgr.SignIn(w, r, h.adminEmail); err != nil {
		h.errLog.Log(r, "failed to create admin session", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/admin"), http.StatusSeeOther)
}

// HandleLogout ends the operator session.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessionMgr.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*───────────────────────────── dashboard ─────────────────────────────*/

// DashboardVM is the view model for the admin landing page.
type DashboardVM struct {
	viewdata.BaseVM
	BusinessCounts map[string]int
	TotalListings  int
	RecentContacts []models.ContactSubmission
}

// Dashboard shows listing counts per category and recent enquiries.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.businesses.CountByCategory(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to count businesses", err)
		counts = map[string]int{}
	}
	total := 0
	for _, n := range counts {
		total += n
	}

	recent, err := h.contacts.ListRecent(r.Context(), 10)
	if err != nil {
		h.errLog.Log(r, "failed to list recent contacts", err)
	}

	vm := DashboardVM{
		BaseVM:         viewdata.NewAdminVM(r, "Dashboard"),
		BusinessCounts: counts,
		TotalListings:  total,
		RecentContacts: recent,
	}
	templates.Render(w, r, "admin/dashboard", vm)
}

/*───────────────────────────── listings ─────────────────────────────*/

// BusinessListVM is the view model for the listing table.
type BusinessListVM struct {
	viewdata.BaseVM
	Businesses []models.Business
}

// ListBusinesses shows every listing, ordered by slug.
func (h *Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.businesses.GetAll(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list businesses", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := BusinessListVM{
		BaseVM:     viewdata.NewAdminVM(r, "Listings"),
		Businesses: businesses,
	}
	templates.Render(w, r, "admin/business_list", vm)
}

// BusinessFormVM is the view model for the create/edit form.
type BusinessFormVM struct {
	viewdata.BaseVM
	Error      string
	IsNew      bool
	Business   models.Business
	Categories []models.Category
	Tiers      []string
	Prices     []string
}

// businessInput carries the validated form fields for a listing.
type businessInput struct {
	Name        string `validate:"required,max=150" label:"Name"`
	Category    string `validate:"required" label:"Category"`
	ListingTier string `validate:"required,listingtier" label:"Listing tier"`
	PriceRange  string `validate:"pricerange" label:"Price range"`
	Website     string `validate:"omitempty,httpurl" label:"Website"`
}

// NewBusiness renders the empty listing form.
func (h *Handler) NewBusiness(w http.ResponseWriter, r *http.Request) {
	h.renderBusinessForm(w, r, models.Business{ListingTier: models.TierFree}, true, "")
}

// EditBusiness renders the form populated with an existing listing.
func (h *Handler) EditBusiness(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	biz, err := h.businesses.GetBySlug(r.Context(), slug)
	if err == mongo.ErrNoDocuments {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load business for edit", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderBusinessForm(w, r, biz, false, "")
}

// SaveBusiness upserts a listing from the form. The slug is derived from the
// name on create and immutable afterwards.
func (h *Handler) SaveBusiness(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse business form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	slug := strings.TrimSpace(r.FormValue("slug"))
	isNew := slug == ""

	input := businessInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Category:    r.FormValue("category_slug"),
		ListingTier: r.FormValue("listing_tier"),
		PriceRange:  r.FormValue("price_range"),
		Website:     strings.TrimSpace(r.FormValue("website")),
	}

	biz := models.Business{
		Slug:             slug,
		Name:             input.Name,
		CategorySlug:     input.Category,
		ListingTier:      input.ListingTier,
		PriceRange:       input.PriceRange,
		Website:          input.Website,
		ShortDescription: strings.TrimSpace(r.FormValue("short_description")),
		LongDescription:  htmlsanitize.Sanitize(r.FormValue("long_description")),
		Address:          strings.TrimSpace(r.FormValue("address")),
		Postcode:         normalize.Postcode(r.FormValue("postcode")),
		Phone:            strings.TrimSpace(r.FormValue("phone")),
		GooglePlaceID:    strings.TrimSpace(r.FormValue("google_place_id")),
		Featured:         r.FormValue("featured") == "on",
	}
	if lat, err := strconv.ParseFloat(r.FormValue("latitude"), 64); err == nil {
		biz.Latitude = &lat
	}
	if lng, err := strconv.ParseFloat(r.FormValue("longitude"), 64); err == nil {
		biz.Longitude = &lng
	}

	if res := inputval.Validate(input); res.HasErrors() {
		h.renderBusinessFormWithStatus(w, r, biz, isNew, res.First())
		return
	}
	if !models.IsValidCategorySlug(input.Category) {
		h.renderBusinessFormWithStatus(w, r, biz, isNew, "Unknown category.")
		return
	}

	if isNew {
		biz.Slug = normalize.Slugify(input.Name)
		if biz.Slug == "" {
			h.renderBusinessFormWithStatus(w, r, biz, true, "Name must contain at least one letter or number.")
			return
		}
		exists, err := h.businesses.Exists(r.Context(), biz.Slug)
		if err != nil {
			h.errLog.Log(r, "failed to check business slug", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if exists {
			h.renderBusinessFormWithStatus(w, r, biz, true, "A listing with this name already exists.")
			return
		}
	}

	if err := h.businesses.Upsert(r.Context(), biz); err != nil {
		h.errLog.Log(r, "failed to save business", err)
		h.renderBusinessFormWithStatus(w, r, biz, isNew, "Failed to save the listing. Please try again.")
		return
	}

	h.logger.Info("listing saved",
		zap.String("slug", biz.Slug),
		zap.Bool("created", isNew))

	http.Redirect(w, r, "/admin/businesses", http.StatusSeeOther)
}

func (h *Handler) renderBusinessForm(w http.ResponseWriter, r *http.Request, biz models.Business, isNew bool, errMsg string) {
	cats, err := h.categories.GetAll(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load categories for form", err)
	}

	title := "Edit Listing"
	if isNew {
		title = "New Listing"
	}

	vm := BusinessFormVM{
		BaseVM:     viewdata.NewAdminVM(r, title),
		Error:      errMsg,
		IsNew:      isNew,
		Business:   biz,
		Categories: cats,
		Tiers:      models.AllListingTiers(),
		Prices:     models.AllPriceRanges(),
	}
	templates.Render(w, r, "admin/business_form", vm)
}

func (h *Handler) renderBusinessFormWithStatus(w http.ResponseWriter, r *http.Request, biz models.Business, isNew bool, errMsg string) {
	w.WriteHeader(http.StatusBadRequest)
	h.renderBusinessForm(w, r, biz, isNew, errMsg)
}

/*───────────────────────────── enquiries ─────────────────────────────*/

// ContactListVM is the view model for the enquiry log.
type ContactListVM struct {
	viewdata.BaseVM
	Submissions []models.ContactSubmission
}

// ListContacts shows the most recent contact submissions.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contacts.ListRecent(r.Context(), 100)
	if err != nil {
		h.errLog.Log(r, "failed to list contact submissions", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ContactListVM{
		BaseVM:      viewdata.NewAdminVM(r, "Enquiries"),
		Submissions: subs,
	}
	templates.Render(w, r, "admin/contact_list", vm)
}
