// Package store provides storage abstractions for the iqmath server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - ContentStore: generic CRUD over a content collection (services,
//     events, team members, testimonials, media, appointments)
//   - UsersStore: admin user lookup and password management
//   - HealthStore: connectivity checks for the status endpoint
//
// # Usage
//
//	services := gorm.NewContentStore[model.Service](db, gorm.ContentOptions{
//	    OrderBy:          "sort_order asc, created_at desc",
//	    VisibilityColumn: "is_visible",
//	    SlugColumn:       "slug",
//	})
//	svc, err := services.GetBySlug("data-science-training")
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
