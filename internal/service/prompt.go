package service

import (
	"fmt"
	"strconv"
)

// RecipeDetailsURL is the public page of a recipe, suffixed with its ID
const RecipeDetailsURL = "https://www.recipesvault.org/Recipe/Details/"

// RecipeURL returns the public page of the recipe with the given ID
func RecipeURL(id int64) string {
	return RecipeDetailsURL + strconv.FormatInt(id, 10)
}

// BuildPrompt embeds the user's message and the recipe listing into the
// assistant instructions. The message is inserted verbatim.
func BuildPrompt(message, listing string) string {
	return fmt.Sprintf(chatPrompt, message, listing, RecipeDetailsURL, RecipeURL(5), RecipeURL(8))
}

const chatPrompt = `You are MunchAI, a friendly and helpful recipe assistant chatbot.

User's request: %s

Available recipes (with IDs):
%s

Your job:
1. Recommend 2-3 recipes that best match what the user wants
2. For EACH recipe you recommend, include a clickable link using this EXACT format:
   [Recipe Name](%sRECIPEID)
   Replace RECIPEID with the actual recipe ID from the list above.
3. Be conversational, warm, and enthusiastic about food
4. Include prep time, difficulty, and cuisine type
5. Keep responses concise but helpful

Example response format:
"I found some great options for you!

1. **[Loaded Omelette](%s)** - A hearty breakfast option with cheese, bacon, and veggies. Ready in 15 minutes, easy difficulty, American cuisine.

2. **[Veggie Scramble](%s)** - Lighter option with fresh vegetables. 10 minutes, easy, American cuisine.

Which sounds good to you?"

IMPORTANT: Always include the clickable links in markdown format for every recipe you mention.`
