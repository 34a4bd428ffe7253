package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"solar-forecast/cmd/chat/dispatcher"
	"solar-forecast/cmd/chat/queryclient"
	"solar-forecast/cmd/chat/render"
	"solar-forecast/cmd/chat/session"
	"solar-forecast/cmd/internal/logger"
)

const limitAdvisory = "You have reached the limit of 5 questions for this session. Type /reset to start over."

func main() {
	logger.InitFromEnv("LOG_LEVEL")

	sess := session.NewManager()
	disp := dispatcher.New(queryclient.New(), sess)

	fmt.Println("Solar Forecast chat. Ask about weather, solar potential, marine conditions or air quality.")
	fmt.Println("Commands: /reset clears the session, /quit exits.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n[%d questions left] > ", sess.RemainingQuestions())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return
		case "/reset":
			sess.Reset()
			fmt.Println("Session cleared.")
			continue
		}

		err := disp.Submit(context.Background(), line)
		switch {
		case errors.Is(err, session.ErrQuestionLimit):
			fmt.Println(limitAdvisory)
			continue
		case errors.Is(err, dispatcher.ErrRequestInFlight):
			// Not reachable from this synchronous loop, but the guard is
			// part of the dispatcher contract.
			fmt.Println("Please wait for the current request to finish.")
			continue
		case err != nil:
			continue
		}

		if message := sess.LastError(); message != "" {
			fmt.Println(message)
			continue
		}

		printLastAnswer(sess)
	}
}

func printLastAnswer(sess *session.Manager) {
	turns := sess.Turns()
	if len(turns) == 0 {
		return
	}
	last := turns[len(turns)-1]
	if last.Role != session.RoleAssistant {
		return
	}

	var tree render.Tree
	if last.Document != nil {
		tree = render.Document(last.Document)
	} else {
		tree = render.Fallback(last.Text)
	}
	fmt.Print(tree.String())
}
