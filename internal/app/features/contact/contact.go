// internal/app/features/contact/contact.go
package contact

import (
	"net/http"
	"strings"
	"time"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	contactstore "github.com/seftonweb/southportlocal/internal/app/store/contactlog"
	"github.com/seftonweb/southportlocal/internal/app/system/inputval"
	"github.com/seftonweb/southportlocal/internal/app/system/mailer"
	"github.com/seftonweb/southportlocal/internal/app/system/normalize"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the contact form. Submissions are stored before any mail is
// sent; delivery failure never loses a message.
type Handler struct {
	store   *contactstore.Store
	sender  mailer.Sender // nil disables mail entirely
	toEmail string        // operator notification recipient
	errLog  *errorsfeature.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new contact Handler. sender may be nil when SMTP is
// not configured; submissions are still recorded.
func NewHandler(db *mongo.Database, sender mailer.Sender, toEmail string, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:   contactstore.New(db),
		sender:  sender,
		toEmail: toEmail,
		errLog:  errLog,
		logger:  logger,
	}
}

// FormVM is the view model for the contact form.
type FormVM struct {
	viewdata.BaseVM
	Error      string
	Name       string
	Email      string
	Subject    string
	Business   string
	Message    string
	MaxMessage int
}

// ThanksVM is the view model for the post-submission page.
type ThanksVM struct {
	viewdata.BaseVM
	Reference string
}

// contactInput carries the validated form fields.
type contactInput struct {
	Name    string `validate:"required,max=100" label:"Name"`
	Email   string `validate:"required,email" label:"Email"`
	Subject string `validate:"max=150" label:"Subject"`
	Message string `validate:"required,max=3000" label:"Message"`
}

// Routes returns a chi.Router with contact routes mounted at /contact.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ShowForm)
	r.Post("/", h.Submit)
	r.Get("/thanks", h.Thanks)
	return r
}

// ShowForm renders the empty contact form.
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	vm := FormVM{
		BaseVM:     viewdata.NewBaseVM(r, "Contact", "Get in touch with Southport Local: corrections, listing suggestions and general enquiries."),
		Business:   normalize.QueryParam(r.URL.Query().Get("about")),
		MaxMessage: models.MaxContactMessageLength,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/contact")

	templates.Render(w, r, "contact/form", vm)
}

// Submit validates and stores a submission, then notifies the operator.
// A notification failure keeps the stored submission (notified=false) and
// re-renders the form with a retryable message; only after the notification
// goes out is the acknowledgement to the submitter attempted, best-effort.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse contact form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	input := contactInput{
		Name:    normalize.Name(r.FormValue("name")),
		Email:   normalize.Email(r.FormValue("email")),
		Subject: strings.TrimSpace(r.FormValue("subject")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	business := strings.TrimSpace(r.FormValue("business"))

	if res := inputval.Validate(input); res.HasErrors() {
		h.renderFormError(w, r, input, business, res.First(), http.StatusBadRequest)
		return
	}

	sub := models.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Business:  business,
	}

	id, err := h.store.Insert(r.Context(), sub)
	if err != nil {
		h.errLog.Log(r, "failed to store contact submission", err)
		h.renderFormError(w, r, input, business, retryMessage, http.StatusInternalServerError)
		return
	}

	if h.sender != nil && h.toEmail != "" {
		textBody, htmlBody := mailer.ContactNotificationEmail(mailer.ContactNotificationData{
			SiteName:    viewdata.SiteName(),
			Reference:   sub.Reference,
			FromName:    sub.Name,
			FromEmail:   sub.Email,
			Subject:     sub.Subject,
			Business:    sub.Business,
			Message:     sub.Message,
			SubmittedAt: time.Now(),
		})
		err := h.sender.Send(mailer.Email{
			To:       h.toEmail,
			Subject:  "Contact form: " + sub.Name,
			TextBody: textBody,
			HTMLBody: htmlBody,
		})
		if err != nil {
			// The submission stays stored with notified=false; the visitor
			// can retry without losing anything, and no acknowledgement goes
			// out for a message the operator never received.
			h.errLog.Log(r, "failed to send contact notification", err)
			h.renderFormError(w, r, input, business, retryMessage, http.StatusBadGateway)
			return
		}
		if err := h.store.MarkNotified(r.Context(), id); err != nil {
			h.logger.Warn("failed to mark submission notified", zap.Error(err))
		}

		ackText, ackHTML := mailer.ContactAckEmail(mailer.ContactAckData{
			SiteName:  viewdata.SiteName(),
			Reference: sub.Reference,
			FromName:  sub.Name,
		})
		if err := h.sender.Send(mailer.Email{
			To:       sub.Email,
			Subject:  "We got your message",
			TextBody: ackText,
			HTMLBody: ackHTML,
		}); err != nil {
			h.logger.Warn("failed to send contact acknowledgement", zap.Error(err))
		}
	}

	http.Redirect(w, r, "/contact/thanks?ref="+sub.Reference, http.StatusSeeOther)
}

// Thanks confirms the submission and shows the reference.
func (h *Handler) Thanks(w http.ResponseWriter, r *http.Request) {
	vm := ThanksVM{
		BaseVM:    viewdata.NewBaseVM(r, "Thanks", ""),
		Reference: normalize.QueryParam(r.URL.Query().Get("ref")),
	}
	vm.Noindex = true

	templates.Render(w, r, "contact/thanks", vm)
}

// retryMessage is shown when storage or the operator notification fails;
// the visitor's input is preserved in the re-rendered form.
const retryMessage = "Sorry, we couldn't send your message just now. Please try again."

func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, input contactInput, business, msg string, status int) {
	vm := FormVM{
		BaseVM:     viewdata.NewBaseVM(r, "Contact", ""),
		Error:      msg,
		Name:       input.Name,
		Email:      input.Email,
		Subject:    input.Subject,
		Business:   business,
		Message:    input.Message,
		MaxMessage: models.MaxContactMessageLength,
	}

	w.WriteHeader(status)
	templates.Render(w, r, "contact/form", vm)
}
