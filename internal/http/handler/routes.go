package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"tutormock/internal/model"
	"tutormock/internal/service"
)

// APIPrefixes are the mount points for resource routes. Frontends in use call
// both, so every resource is served under each.
var APIPrefixes = []string{"/api", "/api/v1"}

// Route maps a method and path, relative to an API prefix, to the payload
// generator for it.
type Route struct {
	Method string
	Path   string
	Handle func(ctx context.Context) (any, error)
}

// ResourceRoutes is the route table for the enveloped resource endpoints.
func ResourceRoutes(svc service.FixtureService) []Route {
	return []Route{
		{fiber.MethodGet, "/auth/me", func(ctx context.Context) (any, error) { return svc.CurrentUser(ctx) }},
		{fiber.MethodPost, "/auth/login", func(ctx context.Context) (any, error) { return svc.Login(ctx) }},
		{fiber.MethodPost, "/auth/logout", func(ctx context.Context) (any, error) { return svc.Logout(ctx) }},
		{fiber.MethodGet, "/subjects", func(ctx context.Context) (any, error) { return svc.Subjects(ctx) }},
		{fiber.MethodGet, "/conversations", func(ctx context.Context) (any, error) { return svc.Conversations(ctx) }},
		{fiber.MethodGet, "/sessions", func(ctx context.Context) (any, error) { return svc.Sessions(ctx) }},
		{fiber.MethodGet, "/requests", func(ctx context.Context) (any, error) { return svc.HelpRequests(ctx) }},
	}
}

// RegisterRoutes attaches the health probes and every resource route under each prefix.
// Call RegisterFallback after any other routes so unmatched requests get the 404 envelope.
func RegisterRoutes(app *fiber.App, svc service.FixtureService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		h, err := svc.Health(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(h)
	})

	// Bare liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := ResourceRoutes(svc)
	for _, prefix := range APIPrefixes {
		group := app.Group(prefix)
		for _, r := range routes {
			group.Add(r.Method, r.Path, envelope(r.Handle))
		}
	}
}

// RegisterFallback installs the catch-all NotFound handler.
func RegisterFallback(app *fiber.App) {
	app.Use(NotFound())
}

// envelope wraps a payload generator's result in a success envelope.
func envelope(handle func(ctx context.Context) (any, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := handle(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(model.OK(data))
	}
}
