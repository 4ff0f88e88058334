package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"github.com/guildandgrove/website/internal/domain"
	"github.com/guildandgrove/website/internal/ports"
	"github.com/guildandgrove/website/internal/shared/middleware"
	"github.com/guildandgrove/website/internal/web/templates"
)

const (
	contactAck    = "Thanks. A partner will be in touch within two working days."
	newsletterAck = "You're subscribed. Look out for our next issue."
)

// queryLookup reports a field as present only when the query carries it.
func queryLookup(q url.Values) func(string) (string, bool) {
	return func(field string) (string, bool) {
		vs, ok := q[field]
		if !ok || len(vs) == 0 {
			return "", false
		}
		return vs[0], true
	}
}

func hasEstimateInput(q url.Values) bool {
	for _, f := range []string{domain.FieldHires, domain.FieldSalary, domain.FieldPercent} {
		if q.Has(f) {
			return true
		}
	}
	return false
}

func (s *Server) pageConfig() templates.PageConfig {
	return templates.PageConfig{
		BasePath:     s.opts.BasePath,
		AssetVersion: s.opts.AssetVersion,
		Lang:         s.opts.Lang,
		Head:         s.meta,
		Year:         time.Now().Year(),
	}
}

// estimate parses the query, computes the estimate and records it under source.
func (s *Server) estimate(r *http.Request, source string) (domain.EstimateInput, domain.Estimate) {
	q := r.URL.Query()
	in := domain.ParseEstimateInput(queryLookup(q))
	est := in.Calculate()

	if source != "" {
		if err := s.recorder.RecordEstimate(r.Context(), source, est); err != nil {
			s.logger.Sugar().Named("web").Warnw("record estimate", "source", source, "error", err)
		}
	}
	return in, est
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			s.logger.Sugar().Named("web").Errorw("render", "path", r.URL.Path, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	source := ""
	if hasEstimateInput(r.URL.Query()) {
		source = ports.SourcePage
	}
	in, est := s.estimate(r, source)

	view := templates.NewEstimatorView(s.opts.BasePath, in, est, s.money)
	s.render(w, r, templates.LandingPage(s.pageConfig(), s.site, view))
}

// handleEstimate returns the result fragment for htmx and the full page otherwise.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsHTMX(r) {
		in, est := s.estimate(r, ports.SourcePage)
		view := templates.NewEstimatorView(s.opts.BasePath, in, est, s.money)
		s.render(w, r, templates.LandingPage(s.pageConfig(), s.site, view))
		return
	}

	in, est := s.estimate(r, ports.SourceHTMX)
	view := templates.NewEstimatorView(s.opts.BasePath, in, est, s.money)
	s.render(w, r, templates.EstimateResult(view))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.acknowledge(w, r, "contact", contactAck)
}

func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	s.acknowledge(w, r, "newsletter", newsletterAck)
}

// acknowledge confirms a form post. Submissions are neither stored nor forwarded.
func (s *Server) acknowledge(w http.ResponseWriter, r *http.Request, form, message string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	s.logger.Sugar().Named("web").Debugw("form acknowledged", "form", form)

	if !middleware.IsHTMX(r) {
		http.Redirect(w, r, s.opts.BasePath+"#contact", http.StatusSeeOther)
		return
	}
	s.render(w, r, templates.FormAck(message))
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := s.meta.Sitemap(s.started)
	if err != nil {
		s.logger.Sugar().Named("web").Errorw("sitemap", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.meta.RobotsTxt()))
}
