// Package server provides HTTP server initialization and lifecycle
// management for the VMS Helper web UI.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/brookeadam/vms-helper/internal/classifier"
	"github.com/brookeadam/vms-helper/internal/config"
	"github.com/brookeadam/vms-helper/internal/llm"
	"github.com/brookeadam/vms-helper/internal/narrative"
	"github.com/brookeadam/vms-helper/internal/partner"
	"github.com/brookeadam/vms-helper/internal/reference"
	"github.com/brookeadam/vms-helper/pkg/types"
	"github.com/brookeadam/vms-helper/web/handlers"
)

// Deps bundles the classification pipeline the server exposes. The
// reference table and classifier are required; Suggester may carry a
// nil generator when no provider is configured.
type Deps struct {
	Table      *reference.Table
	Classifier *classifier.Classifier
	Partners   *partner.Resolver
	Suggester  *llm.Suggester
	Renderer   *narrative.Renderer
}

// securityHeadersMiddleware adds security headers to all HTTP responses.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// Start initializes and starts the HTTP server. Returns the actual
// address being listened on (useful for testing with port 0) and the
// preview hub for wiring external broadcasts. The server shuts down
// when ctx is cancelled.
func Start(ctx context.Context, cfg *config.Config, deps Deps) (string, *handlers.PreviewHub) {
	mux := http.NewServeMux()

	origins := []string{
		fmt.Sprintf("localhost:%d", cfg.Server.Port),
		fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port),
	}

	// Live preview: render the client's current form state and
	// broadcast the sentence to every connected client.
	wsHub := handlers.NewPreviewHub(func(req handlers.PreviewRequest) handlers.PreviewMessage {
		var activityType string
		if row, ok := deps.Table.Row(req.Category, req.Subcategory); ok {
			activityType = row.ActivityType
		}
		sentence := deps.Renderer.Render(narrative.Input{
			Category:     types.ParseCategory(req.Category),
			Subcategory:  req.Subcategory,
			ActivityType: activityType,
			Activity: types.ActivityContext{
				TaskText:     req.Task,
				Organization: req.Organization,
				Location:     req.Location,
			},
		})
		return handlers.PreviewMessage{Type: "preview", Sentence: sentence}
	}, origins)
	go wsHub.Run()

	// Create rate limiter (10 req/sec, burst of 20)
	rateLimiter := handlers.NewRateLimiter(10.0, 20)

	apiHandlers := handlers.NewAPIHandlers(deps.Table, deps.Classifier, deps.Partners, deps.Suggester, deps.Renderer, wsHub)

	// API routes (require auth in production mode)
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("/api/reference/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			apiHandlers.ListCategories(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	apiMux.HandleFunc("/api/reference/subcategories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			apiHandlers.ListSubcategories(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	apiMux.HandleFunc("/api/classify", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			apiHandlers.Classify(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	apiMux.HandleFunc("/api/suggest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			apiHandlers.Suggest(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	apiMux.HandleFunc("/api/render", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			apiHandlers.Render(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Health endpoint, no auth required, used by monitoring
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		apiHandlers.Health(w, r)
	})

	// Wrap API routes with auth middleware
	mux.Handle("/api/", handlers.RequireAuth(apiMux, cfg))

	// WebSocket endpoint (no auth required, origin validation handles security)
	mux.Handle("/ws/preview", wsHub)

	// Embedded form page
	mux.HandleFunc("/", handlers.Index)

	// Wrap entire server with rate limiting, then security headers
	handler := handlers.RateLimitMiddleware(mux, rateLimiter)
	handler = securityHeadersMiddleware(handler)

	// Create server with security timeouts
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	actualAddr := listener.Addr().String()

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		wsHub.Stop()
	}()

	log.Printf("VMS Helper listening on %s", actualAddr)
	return actualAddr, wsHub
}
