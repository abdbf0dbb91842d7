package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/meeting-report/internal/spinner"
	"google.golang.org/genai"
)

const exitCommand = "exit"

// Run reads one message per line from in and prints each reply to out.
// It returns nil on "exit" or end of input, and the first send error
// otherwise.
func (c *implChat) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Chat has started. Type '%s' to end the conversation.\n", exitCommand)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(out)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitCommand) {
			fmt.Fprintln(out, "Chat ended.")
			return nil
		}

		resp, err := spinner.Run(c.spinner, "Thinking...", func() (*genai.GenerateContentResponse, error) {
			return c.session.SendMessage(ctx, genai.Part{Text: line})
		})
		if err != nil {
			return fmt.Errorf("send message: %w", err)
		}

		reply := strings.TrimSpace(resp.Text())
		c.logger.Debug(ctx, "Reply received (%d chars)", len(reply))
		fmt.Fprintf(out, "\nModel: %s\n\n", reply)
	}
}
