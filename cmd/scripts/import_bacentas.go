package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/config"
	"github.com/firstlovecenter/fl-admin-backend/pkg/mongodb"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Imports bacenta cost configuration from a CSV export of the membership
// system. Columns: name, leader id, target, swell cost, swell contribution,
// normal cost, normal contribution, momo number, mobile network, momo name.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}

	dbName := config.GetEnv("MONGODB_DATABASE", "fl-admin")

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	err = importBacentas(db, csvFilePath)
	if err != nil {
		log.Fatalf("Failed to import bacentas: %v", err)
	}

	log.Println("Bacentas imported successfully")
}

func importBacentas(db *mongo.Database, csvFilePath string) error {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV file: %w", err)
	}

	if len(records) < 2 {
		return fmt.Errorf("CSV file is empty or has only header")
	}

	collection := db.Collection("bacentas")

	for i, record := range records {
		// Skip header
		if i == 0 {
			continue
		}

		if len(record) < 7 {
			log.Printf("Warning: Record %d has less than 7 fields, skipping", i)
			continue
		}

		name := record[0]
		leaderID := record[1]
		target, err := strconv.Atoi(record[2])
		if err != nil {
			log.Printf("Warning: Record %d has invalid target, skipping", i)
			continue
		}
		costs := make([]float64, 4)
		bad := false
		for j := 0; j < 4; j++ {
			costs[j], err = strconv.ParseFloat(record[3+j], 64)
			if err != nil {
				log.Printf("Warning: Record %d has invalid cost in column %d, skipping", i, 3+j)
				bad = true
				break
			}
		}
		if bad {
			continue
		}

		update := bson.M{
			"$set": bson.M{
				"leaderId":                   leaderID,
				"target":                     target,
				"swellBussingCost":           costs[0],
				"swellPersonalContribution":  costs[1],
				"normalBussingCost":          costs[2],
				"normalPersonalContribution": costs[3],
				"updatedAt":                  time.Now(),
			},
			"$setOnInsert": bson.M{
				"_id":       uuid.NewString(),
				"name":      name,
				"createdAt": time.Now(),
			},
		}
		if len(record) >= 10 {
			update["$set"].(bson.M)["momoNumber"] = record[7]
			update["$set"].(bson.M)["mobileNetwork"] = record[8]
			update["$set"].(bson.M)["momoName"] = record[9]
		}

		_, err = collection.UpdateOne(
			context.Background(),
			bson.M{"name": name},
			update,
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Printf("Warning: Failed to upsert bacenta for record %d: %v", i, err)
			continue
		}
	}

	return nil
}
