// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the showcase page.
	RouteRoot = "/"
	// RouteScrollTo resolves a navbar section to its in-page anchor.
	RouteScrollTo = "/go/{section}"
	// RouteModalOpen opens the auth or admin modal.
	RouteModalOpen = "/modals/{modal}/open"
	// RouteModalClose closes the auth or admin modal.
	RouteModalClose = "/modals/{modal}/close"
	// RouteAuthMode switches the auth form between login and signup.
	RouteAuthMode = "/auth/mode"
	// RouteAuthLogin submits the auth form.
	RouteAuthLogin = "/auth/login"
	// RouteAdminStories submits the story upload form.
	RouteAdminStories = "/admin/stories"
	// RouteCommunityComments submits the comment composer.
	RouteCommunityComments = "/community/comments"
	// RouteAudio reports the soundtrack toggle state.
	RouteAudio = "/audio"
	// RouteAudioToggle flips the soundtrack toggle.
	RouteAudioToggle = "/audio/toggle"
	// RouteHealth is the health check.
	RouteHealth = "/health"
	// RouteAPICatalog is the read-only catalog API.
	RouteAPICatalog = "/api/v1/catalog"
	// RouteRobots serves robots.txt.
	RouteRobots = "/robots.txt"
	// RouteSitemap serves the sitemap.
	RouteSitemap = "/sitemap.xml"
)

// Form fields shared by the showcase handlers.
const (
	formSlide  = "slide"
	formAnchor = "anchor"
)

// Flash message keys, translated at render time.
const (
	flashLoggedIn        = "flash.logged_in"
	flashStorySubmitted  = "flash.story_submitted"
	flashCommentNotSaved = "flash.comment_not_saved"
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
