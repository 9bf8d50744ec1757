// File: services/planner/prompts.go
package planner

import (
	"fmt"
	"strings"

	"tripwise/models"
)

// buildGeneratePrompt embeds every request field plus the exact output shape
// the itinerary validator expects.
func buildGeneratePrompt(req models.TripRequest) string {
	return fmt.Sprintf(`You are an expert travel planner specializing in domestic travel within India. Generate a personalized trip itinerary in JSON format based on the following information:

Destination: %s, India
Start Date: %s
Duration: %d days
Budget: %s (Please assume this is in INR)
Number of Travellers: %d
Themes: %s

The response must be a valid JSON object. The top-level JSON object must include:
- "destination": a string matching the user's input.
- "startDate": a string matching the user's input in YYYY-MM-DD format.
- "duration": a number matching the user's input.
- "budget": a string matching the user's input.
- "numberOfTravellers": a number matching the user's input.
- "itinerary": an array of day objects.

Each day object in the "itinerary" array must include:
- "day": a number (e.g., 1, 2).
- "title": a string for the day's theme (e.g., "Cultural Exploration").
- "activities": an array of activity objects.

Each activity object in the "activities" array must include:
- "placeName": a string for the name of the place or activity.
- "description": a string describing the activity.
- "travelTime": an optional string for estimated travel time.
- "cost": an optional string for the estimated cost in INR.

Do not omit any of the required fields. All locations and activities must be within India. Do not include any explanations or conversational text. Only provide the raw JSON. If a theme is not feasible, choose a reasonable alternative suitable for the Indian destination.`,
		req.Destination, req.StartDate, req.Duration, req.Budget,
		req.NumberOfTravellers, strings.Join(req.Themes, ", "))
}

// buildSuggestPrompt lists whichever fields are present and asks the model to
// fill in exactly the missing ones.
func buildSuggestPrompt(in models.TripSuggestionInput) string {
	duration := ""
	if in.Duration > 0 {
		duration = fmt.Sprintf("%d", in.Duration)
	}
	travellers := ""
	if in.NumberOfTravellers > 0 {
		travellers = fmt.Sprintf("%d", in.NumberOfTravellers)
	}
	return fmt.Sprintf(`You are an AI-powered travel assistant for TripWise.
Your job is to intelligently fill in missing trip details for users planning trips within India.

Inputs provided:
- Destination: %s
- Budget: %s
- Duration: %s
- Theme: %s
- Number of Travellers: %s

Rules:
1. If destination is missing, suggest one in India based on the other fields.
2. If budget is missing, suggest a realistic budget in INR based on the other fields.
3. If duration is missing, suggest an optimal trip duration in days (as a number) based on the other fields.
4. If theme is missing, suggest a theme that best fits the other fields.
5. If numberOfTravellers is missing, suggest a common number, like 2 or 4.
6. If all fields are missing, suggest a complete recommended trip (destination, budget, duration, theme, numberOfTravellers) within India.
7. If all fields are filled, generate an alternative surprise suggestion with slightly different values.
8. Always return results in India only.
9. Always return output as a valid JSON object with the keys "destination", "budget", "duration", "theme" and "numberOfTravellers". The duration and numberOfTravellers must be a number, not a string.`,
		in.Destination, in.Budget, duration, in.Theme, travellers)
}

// buildWeatherPrompt carries the serialized day list and the fixed
// indoor/outdoor policy.
func buildWeatherPrompt(daysJSON string, condition models.WeatherCondition) string {
	return fmt.Sprintf(`Given the current itinerary and weather condition, adjust the itinerary to suggest indoor activities if it is raining, and outdoor activities if it is sunny.

You must return the full itinerary day list as a valid JSON array, including all original fields (day, title, activities, placeName, description, etc.). Do not omit any fields and do not change the number of days or their order. Only change the activities that need to be adjusted for the weather.

Current Itinerary (JSON): %s
Weather Condition: %s

Return only the adjusted day list as a single, complete JSON array.`, daysJSON, condition)
}

// buildTranslatePrompt asks for an element-wise translation of the flat list.
func buildTranslatePrompt(textsJSON, targetLanguage string) string {
	return fmt.Sprintf(`Translate each element of the following JSON array of strings to %s.
Translate every element independently and preserve the order. The output array must contain exactly one translated string for each input string.

Input JSON: %s

Return only the translated strings as a single, complete JSON array of strings.`, targetLanguage, textsJSON)
}
