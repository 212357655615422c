package main

import (
	"fmt"
	"os"

	"github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/iqmath/iqmath-server/pkg/auth"
	"github.com/iqmath/iqmath-server/pkg/db"
	"github.com/iqmath/iqmath-server/pkg/model"
	gormstore "github.com/iqmath/iqmath-server/pkg/server/store/gorm"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a first admin user and sample content",
	Long: `Seed the database with a first admin user and sample content.

The command is idempotent: it creates the admin user only when no users
exist, and sample services only when the services table is empty.

The admin password is read from the IQMATH_USER_PASSWORD environment
variable, or generated and printed to stdout.

Example:
  iqmathctl seed
  iqmathctl seed --email admin@iqmath.in`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")

		if err := runSeed(email, name); err != nil {
			fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().String("email", "admin@iqmath.in", "Email for the first admin user")
	seedCmd.Flags().String("name", "Admin", "Name for the first admin user")
}

func runSeed(adminEmail, adminName string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	if err := seedAdmin(database, adminEmail, adminName); err != nil {
		return err
	}
	return seedServices(database)
}

func seedAdmin(database *gorm.DB, email, name string) error {
	users := gormstore.NewUsersStore(database)

	count, err := users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Users already exist, skipping admin user")
		return nil
	}

	password, generated, err := resolvePassword()
	if err != nil {
		return err
	}
	if len(password) < model.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", model.MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	}
	if err := users.Create(user); err != nil {
		return err
	}

	fmt.Printf("Created admin user %s\n", user.Email)
	if generated {
		fmt.Println(password)
	}
	return nil
}

func seedServices(database *gorm.DB) error {
	services := gormstore.NewServicesStore(database)

	existing, err := services.List(false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("Services already exist, skipping sample content")
		return nil
	}

	samples := []model.Service{
		{
			Title:            "Corporate AI Training",
			ShortDescription: "Hands-on AI and machine learning training for engineering teams.",
			FullDescription: "A structured program covering applied machine learning, " +
				"LLM integration, and MLOps practices, tailored to your stack.",
			Category:       model.CategoryTraining,
			Outcomes:       pq.StringArray{"Ship ML features with confidence", "Evaluate models rigorously"},
			TargetAudience: pq.StringArray{"corporate"},
			Duration:       "4 weeks",
			Order:          1,
		},
		{
			Title:            "Mathematics for Data Science",
			ShortDescription: "College-level mathematics foundations for data science careers.",
			FullDescription: "Linear algebra, probability, and optimization taught through " +
				"worked problems drawn from real data science interviews.",
			Category:       model.CategoryTraining,
			Outcomes:       pq.StringArray{"Solid mathematical foundations"},
			TargetAudience: pq.StringArray{"student", "college"},
			Duration:       "8 weeks",
			Order:          2,
		},
		{
			Title:            "AI Strategy Consulting",
			ShortDescription: "Advisory engagements for organizations adopting AI.",
			FullDescription: "We assess your data and processes, identify high-value " +
				"automation opportunities, and build an adoption roadmap.",
			Category:       model.CategoryConsulting,
			Outcomes:       pq.StringArray{"Actionable AI roadmap"},
			TargetAudience: pq.StringArray{"corporate"},
			Order:          3,
		},
	}

	for i := range samples {
		if err := services.Create(&samples[i]); err != nil {
			return fmt.Errorf("failed to create service %q: %w", samples[i].Title, err)
		}
	}

	fmt.Printf("Created %d sample services\n", len(samples))
	return nil
}
