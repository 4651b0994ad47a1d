// Command seed loads the static FAQ and health information content into the
// database. Run it once after migrations, or again with -reset to replace
// existing rows.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cardioguard/database"
	"cardioguard/internal/models"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	reset := seedCmd.Bool("reset", false, "Delete existing content rows before seeding")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if *reset {
			if err := clearContent(); err != nil {
				log.Fatalf("Failed to clear content: %v", err)
			}
		}
		if err := seedContent(); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Content seeded successfully")
	case "clear":
		database.ConnectDatabase()
		if err := clearContent(); err != nil {
			log.Fatalf("Failed to clear content: %v", err)
		}
		log.Println("Content cleared successfully")
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed [-reset]   Load FAQ and health information content")
	fmt.Println("  clear           Remove all FAQ and health information content")
}

func clearContent() error {
	if err := database.DB.Where("1 = 1").Delete(&models.FAQ{}).Error; err != nil {
		return err
	}
	return database.DB.Where("1 = 1").Delete(&models.HealthInformation{}).Error
}

func seedContent() error {
	for _, faq := range faqEntries {
		f := faq
		if err := database.DB.Create(&f).Error; err != nil {
			return err
		}
	}
	for _, info := range healthEntries {
		h := info
		if err := database.DB.Create(&h).Error; err != nil {
			return err
		}
	}
	return nil
}

var faqEntries = []models.FAQ{
	{
		Title:  "What does the risk assessment measure?",
		Detail: "The assessment estimates your likelihood of developing heart disease based on the health and lifestyle details you provide. It is a screening aid, not a diagnosis.",
		Index:  1,
		Status: 1,
	},
	{
		Title:  "Do I need an account to take the test?",
		Detail: "No. You can take the test as a guest, but results are only saved to your history when you are logged in.",
		Index:  2,
		Status: 1,
	},
	{
		Title:  "How accurate is the prediction?",
		Detail: "The model is trained on large population health surveys. It reflects statistical risk across similar profiles and cannot account for every individual factor, so always consult a clinician about your results.",
		Index:  3,
		Status: 1,
	},
	{
		Title:  "Is my health data shared with anyone?",
		Detail: "Your submissions are used only to produce your prediction and, if you choose, to build your personal history. They are never shared with third parties.",
		Index:  4,
		Status: 1,
	},
	{
		Title:  "How do I delete my saved results?",
		Detail: "Open your history page to remove individual records or clear the entire history. Deleting your account also removes access to all saved results.",
		Index:  5,
		Status: 1,
	},
}

var healthEntries = []models.HealthInformation{
	{
		Title:    "Heart disease is the leading cause of death worldwide",
		Detail:   "Cardiovascular diseases account for roughly one in three deaths globally. Most events occur in people with at least one modifiable risk factor.",
		Index:    1,
		Category: models.HealthCategoryFacts,
	},
	{
		Title:    "High blood pressure often has no symptoms",
		Detail:   "Hypertension can silently damage arteries for years. Regular blood pressure checks are the only reliable way to catch it early.",
		Index:    2,
		Category: models.HealthCategoryFacts,
	},
	{
		Title:    "Cholesterol levels matter at any age",
		Detail:   "Elevated LDL cholesterol contributes to plaque buildup over decades. Knowing your numbers early gives you more time to act.",
		Index:    3,
		Category: models.HealthCategoryFacts,
	},
	{
		Title:    "Move for at least 150 minutes a week",
		Detail:   "Moderate aerobic activity such as brisk walking, cycling or swimming strengthens the heart and helps control weight, blood pressure and blood sugar.",
		Index:    1,
		Category: models.HealthCategoryPrevention,
	},
	{
		Title:    "Quit smoking",
		Detail:   "Smoking damages blood vessels and sharply raises heart attack risk. Risk starts dropping within weeks of quitting and keeps falling for years.",
		Index:    2,
		Category: models.HealthCategoryPrevention,
	},
	{
		Title:    "Prioritise sleep and stress management",
		Detail:   "Chronic short sleep and sustained stress both raise blood pressure and inflammation. Aim for seven to nine hours and build recovery time into your routine.",
		Index:    3,
		Category: models.HealthCategoryPrevention,
	},
	{
		Title:    "Medication works best alongside lifestyle change",
		Detail:   "Statins, blood pressure medication and diabetes treatment substantially cut cardiovascular risk, and their effect compounds with diet and exercise improvements.",
		Index:    1,
		Category: models.HealthCategoryTreatment,
	},
	{
		Title:    "Cardiac rehabilitation after an event",
		Detail:   "Structured rehabilitation programmes combining supervised exercise, education and counselling reduce the chance of a repeat event and speed recovery.",
		Index:    2,
		Category: models.HealthCategoryTreatment,
	},
	{
		Title:    "Follow up regularly with your care team",
		Detail:   "Risk factors drift over time. Scheduled reviews let your clinician adjust treatment before small changes become serious problems.",
		Index:    3,
		Category: models.HealthCategoryTreatment,
	},
}
