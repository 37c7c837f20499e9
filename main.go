package main

import "github.com/ytkit/transcript-api/cmd"

// @title           Transcript API
// @version         1.0.0
// @description     A YouTube transcript extraction and storage API with channel listings and full-text search
// @contact.name    API Support
// @contact.url     https://github.com/ytkit/transcript-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
