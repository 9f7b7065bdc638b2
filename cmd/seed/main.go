package main

import (
	"context"
	"fmt"
	"time"

	"github.com/trivialab/trivia-backend/internal/config"
	"github.com/trivialab/trivia-backend/internal/database"
	"github.com/trivialab/trivia-backend/internal/logger"
	"github.com/trivialab/trivia-backend/internal/model"
	"github.com/trivialab/trivia-backend/internal/repository"
	"github.com/trivialab/trivia-backend/internal/service"
)

// Seeds the classic trivia fixture set so a fresh instance is playable.
// Categories are inserted only when the table is empty; questions are
// appended through the regular service path.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	questionService := service.NewQuestionService(questionRepo, log)

	existing, err := categoryRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read categories")
	}

	if len(existing) == 0 {
		categories := []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}
		for _, name := range categories {
			if _, err := pool.Exec(ctx, `INSERT INTO categories (type) VALUES ($1)`, name); err != nil {
				log.Fatal().Err(err).Str("category", name).Msg("Failed to insert category")
			}
		}
		fmt.Printf("Inserted %d categories\n", len(categories))
	} else {
		fmt.Printf("Found %d existing categories, keeping them\n", len(existing))
	}

	questions := []model.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{Question: "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4},
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
		{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
		{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{Question: "Who is the only person to win a Nobel Prize in two different sciences?", Answer: "Marie Curie", Category: 1, Difficulty: 3},
	}

	successCount := 0
	for i := range questions {
		if err := questionService.Create(ctx, &questions[i]); err != nil {
			fmt.Printf("Error inserting question %q: %v\n", questions[i].Question, err)
			continue
		}
		successCount++
	}

	fmt.Printf("\nSeed completed! Inserted %d/%d questions.\n", successCount, len(questions))
}
