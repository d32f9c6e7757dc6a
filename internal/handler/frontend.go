// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/chronicle/internal/audio"
	"github.com/olegiv/chronicle/internal/community"
	"github.com/olegiv/chronicle/internal/forms"
	"github.com/olegiv/chronicle/internal/i18n"
	"github.com/olegiv/chronicle/internal/middleware"
	"github.com/olegiv/chronicle/internal/model"
	"github.com/olegiv/chronicle/internal/render"
	"github.com/olegiv/chronicle/internal/seo"
	"github.com/olegiv/chronicle/internal/service"
	"github.com/olegiv/chronicle/internal/showcase"
	"github.com/olegiv/chronicle/internal/slider"
)

// NavItem is one navbar link.
type NavItem struct {
	Name     string
	LabelKey string
	Href     string
}

// HomeView is the view model of the showcase page.
type HomeView struct {
	State       showcase.State
	Nav         []NavItem
	Slides      []model.Slide
	Slider      slider.View
	Slide       model.Slide
	Sections    []service.SectionView
	About       template.HTML
	Contact     template.HTML
	Feed        community.Feed
	AuthForm    *forms.AuthForm
	StoryFields []forms.Field
	Audio       audio.State
	Soundtrack  string
}

// Action returns a form action that redirects back to the current slide
// and, when anchor names a section, to that section.
func (v HomeView) Action(path, anchor string) string {
	q := url.Values{}
	q.Set(formSlide, strconv.Itoa(v.Slider.Current))
	if anchor != "" {
		q.Set(formAnchor, anchor)
	}
	return path + "?" + q.Encode()
}

// SlideHref links to slide i.
func (v HomeView) SlideHref(i int) string {
	return RouteRoot + "?" + formSlide + "=" + strconv.Itoa(i) + "#home"
}

// FrontendHandler renders the showcase page and resolves navbar targets.
type FrontendHandler struct {
	renderer   *render.Renderer
	sessions   *showcase.SessionStore
	catalog    *service.CatalogService
	rotator    *slider.Rotator
	audio      *audio.Registry
	soundtrack string
	site       seo.SiteConfig
}

// NewFrontendHandler creates a new FrontendHandler. The site name and
// description in site are filled in per language.
func NewFrontendHandler(
	renderer *render.Renderer,
	sessions *showcase.SessionStore,
	catalog *service.CatalogService,
	rotator *slider.Rotator,
	registry *audio.Registry,
	soundtrack string,
	site seo.SiteConfig,
) *FrontendHandler {
	return &FrontendHandler{
		renderer:   renderer,
		sessions:   sessions,
		catalog:    catalog,
		rotator:    rotator,
		audio:      registry,
		soundtrack: soundtrack,
		site:       site,
	}
}

// Home handles GET / (the whole page).
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r.Context())
	h.RenderPage(w, r, forms.NewAuthForm(st.AuthMode))
}

// RenderPage renders the showcase page with authForm in the auth modal.
func (h *FrontendHandler) RenderPage(w http.ResponseWriter, r *http.Request, authForm *forms.AuthForm) {
	ctx := r.Context()
	lang := middleware.GetLanguage(r)
	st := h.sessions.Load(ctx)

	slides := h.catalog.Slides()
	view := slider.NewView(slider.ParseIndex(r.URL.Query().Get(formSlide), len(slides), h.rotator.Current()), len(slides))

	data := HomeView{
		State:       st,
		Nav:         navItems(),
		Slides:      slides,
		Slider:      view,
		Sections:    h.catalog.Sections(),
		About:       h.catalog.About(),
		Contact:     h.catalog.Contact(),
		Feed:        community.NewFeed(h.catalog.Comments(), st.LoggedIn, st.CurrentUser),
		AuthForm:    authForm,
		StoryFields: forms.StoryForm{}.Fields(),
		Audio:       h.audio.Peek(h.sessions.ListenerID(ctx)),
		Soundtrack:  h.soundtrack,
	}
	if len(slides) > 0 {
		data.Slide = slides[view.Current]
	}

	site := h.site
	site.SiteName = i18n.T(lang, "site.name")
	site.Description = i18n.T(lang, "site.tagline")

	if err := h.renderer.Render(w, r, "home", render.TemplateData{
		Title: site.SiteName,
		Lang:  lang,
		Meta:  seo.BuildMeta(site, lang, data.Slide),
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render home page", "error", err)
	}
}

// ScrollTo handles GET /go/{section}. Known sections redirect to their
// anchor; unknown ones answer 204 so the browser stays where it is.
func (h *FrontendHandler) ScrollTo(w http.ResponseWriter, r *http.Request) {
	fragment, ok := showcase.ScrollTarget(chi.URLParam(r, "section"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, RouteRoot+fragment, http.StatusSeeOther)
}

// NotFound sends unknown paths back to the page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		http.Redirect(w, r, RouteRoot, http.StatusFound)
		return
	}
	http.NotFound(w, r)
}

func navItems() []NavItem {
	sections := showcase.Sections()
	items := make([]NavItem, 0, len(sections))
	for _, name := range sections {
		items = append(items, NavItem{
			Name:     name,
			LabelKey: "nav." + name,
			Href:     "/go/" + name,
		})
	}
	return items
}
