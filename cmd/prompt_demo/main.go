// README: Demo; interprets the example prompts and prints mock itineraries.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripmind/internal/ai"
	"tripmind/internal/modules/itinerary"
	"tripmind/internal/modules/prompt"
)

func main() {
	ctx := context.Background()
	provider := ai.NewMockProvider()

	for _, text := range itinerary.ExamplePrompts {
		parsed := prompt.Interpret(text)
		fmt.Printf("Prompt: %q\n", text)
		fmt.Printf("  destination=%s days=%d interests=%v\n",
			parsed.Destination, parsed.Days, prompt.ClassifyInterests(text))

		req, err := itinerary.BuildRequest(itinerary.PlanForm{Mode: itinerary.ModeQuick, Prompt: text}, time.Now())
		if err != nil {
			log.Fatalf("build request: %v", err)
		}

		resp, err := provider.GenerateItinerary(ctx, req)
		if err != nil {
			log.Fatalf("generate: %v", err)
		}

		display := itinerary.Render(resp)
		fmt.Printf("  %s, %s to %s, total %s\n", display.Destination, display.StartDate, display.EndDate, display.TotalCost)
		for _, day := range display.Days {
			fmt.Printf("    Day %d (%s): %s, %s\n", day.DayNumber, day.Date, day.Title, day.Cost)
		}
		fmt.Println()
	}
}
