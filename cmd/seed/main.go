package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vandana2004/CookingBlog/config"
	"github.com/vandana2004/CookingBlog/internal/database"
	"github.com/vandana2004/CookingBlog/internal/service"
)

func main() {
	reset := flag.Bool("reset", false, "delete all recipes and categories first")
	recipes := flag.Bool("recipes", true, "insert the sample recipes")
	bucketPolicy := flag.Bool("bucket-policy", false, "allow public reads of uploaded recipe images in the S3 bucket")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer st.Close(context.Background())

	res, err := Seed(ctx, st, Options{Reset: *reset, Recipes: *recipes})
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	log.Printf("[Seed] Inserted %d categories and %d recipes", res.Categories, res.Recipes)

	if *bucketPolicy {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		if err := s3cfg.SetupBucketPolicy(ctx, service.PublicIDPrefix); err != nil {
			log.Fatalf("Failed to set bucket policy: %v", err)
		}
		log.Printf("[Seed] Public read policy applied to s3://%s/%s", s3cfg.BucketName, service.PublicIDPrefix)
	}
}
