// Package secrets implements the search, selection and editing workflows on
// top of the aws CLI invoker.
package secrets

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vietdv277/smf/internal/awscli"
	"github.com/vietdv277/smf/internal/editor"
	"github.com/vietdv277/smf/internal/logging"
	"github.com/vietdv277/smf/internal/ui"
	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

// aws secretsmanager subcommands used by the workflows
const (
	cmdList     = "list-secrets"
	cmdGetValue = "get-secret-value"
	cmdDescribe = "describe-secret"
	cmdCreate   = "create-secret"
	cmdUpdate   = "update-secret"
	cmdDelete   = "delete-secret"
)

const selectPrompt = "Select secret"

// Runner executes one secretsmanager subcommand. *awscli.Client implements it.
type Runner interface {
	Run(ctx context.Context, subcommand string, args ...string) (string, error)
	RunJSON(ctx context.Context, v interface{}, subcommand string, args ...string) error
}

// Chooser picks one of several candidates and returns its index.
type Chooser interface {
	Choose(prompt string, candidates []pkgtypes.Secret) (int, error)
}

// Confirmer asks a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Service runs the secret workflows. Human-readable results go to Out;
// echoes, prompts and status lines go to Err.
type Service struct {
	runner    Runner
	chooser   Chooser
	confirmer Confirmer
	editor    editor.Editor
	out       io.Writer
	err       io.Writer
	logger    *logging.Logger
}

// Option customizes a Service
type Option func(*Service)

// WithChooser sets the picker used when a query matches several secrets
func WithChooser(c Chooser) Option {
	return func(s *Service) { s.chooser = c }
}

// WithConfirmer sets the prompt used before deleting
func WithConfirmer(c Confirmer) Option {
	return func(s *Service) { s.confirmer = c }
}

// WithEditor sets the editor used by create and edit
func WithEditor(e editor.Editor) Option {
	return func(s *Service) { s.editor = e }
}

// WithOutput sets the stdout and stderr writers
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Service) {
		s.out = out
		s.err = errOut
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New creates a Service. Unset collaborators default to terminal implementations.
func New(runner Runner, opts ...Option) *Service {
	s := &Service{
		runner: runner,
		out:    os.Stdout,
		err:    os.Stderr,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chooser == nil {
		s.chooser = &ui.NumberedChooser{In: os.Stdin, Out: s.err}
	}
	if s.confirmer == nil {
		s.confirmer = &ui.Confirmer{In: os.Stdin, Out: s.err}
	}
	if s.editor == nil {
		s.editor = editor.NewCommand(editor.Resolve(os.LookupEnv))
	}
	return s
}

// ListAll returns every secret in the order the CLI reported them
func (s *Service) ListAll(ctx context.Context) (pkgtypes.SecretList, error) {
	var list pkgtypes.SecretList
	if err := s.runner.RunJSON(ctx, &list, cmdList); err != nil {
		return pkgtypes.SecretList{}, err
	}
	return list, nil
}

// SearchAll returns the secrets whose name contains query, ignoring case.
// An empty result is a *NoMatchError.
func (s *Service) SearchAll(ctx context.Context, query string) (pkgtypes.SecretList, error) {
	list, err := s.ListAll(ctx)
	if err != nil {
		return pkgtypes.SecretList{}, err
	}

	total := len(list.Secrets)
	list.Secrets = Filter(list.Secrets, query)
	s.logger.Debug("query %q matched %d of %d secrets", query, len(list.Secrets), total)
	if len(list.Secrets) == 0 {
		return pkgtypes.SecretList{}, &NoMatchError{Query: query}
	}
	return list, nil
}

// Filter keeps the secrets whose lowercased name contains the lowercased query
func Filter(secrets []pkgtypes.Secret, query string) []pkgtypes.Secret {
	q := strings.ToLower(query)
	var matched []pkgtypes.Secret
	for _, sec := range secrets {
		if strings.Contains(strings.ToLower(sec.Name), q) {
			matched = append(matched, sec)
		}
	}
	return matched
}

// Select resolves query to one secret. A single match is echoed to stderr and
// returned without prompting; several matches go to the Chooser in list order.
func (s *Service) Select(ctx context.Context, query string) (pkgtypes.Secret, error) {
	list, err := s.SearchAll(ctx, query)
	if err != nil {
		return pkgtypes.Secret{}, err
	}

	if len(list.Secrets) == 1 {
		fmt.Fprintln(s.err, list.Secrets[0].Name)
		return list.Secrets[0], nil
	}

	s.logger.Debug("choosing among: %s", strings.Join(list.Names(), ", "))
	i, err := s.chooser.Choose(selectPrompt, list.Secrets)
	if err != nil {
		return pkgtypes.Secret{}, err
	}
	if i < 0 || i >= len(list.Secrets) {
		return pkgtypes.Secret{}, fmt.Errorf("please enter a value between 0 and %d", len(list.Secrets)-1)
	}
	s.logger.Debug("selected %s", list.Secrets[i].ARN)
	return list.Secrets[i], nil
}

// RenderValue fetches the secret string for arn. JSON payloads are
// pretty-printed (and colorized when colored is set); anything else is
// returned unchanged.
func (s *Service) RenderValue(ctx context.Context, arn string, colored bool) (string, error) {
	var sec pkgtypes.Secret
	if err := s.runner.RunJSON(ctx, &sec, cmdGetValue, "--secret-id", arn); err != nil {
		return "", err
	}
	return renderPayload(sec.ValueOrEmpty(), colored), nil
}

func renderPayload(raw string, colored bool) string {
	v, err := ui.ParseJSON(raw)
	if err != nil {
		return raw
	}
	return ui.FormatJSON(v, colored)
}

// List prints every secret as a table
func (s *Service) List(ctx context.Context) error {
	list, err := s.ListAll(ctx)
	if err != nil {
		return err
	}
	ui.PrintSecretsTable(s.out, list.Secrets)
	return nil
}

// Search prints the secrets matching query as a table
func (s *Service) Search(ctx context.Context, query string) error {
	list, err := s.SearchAll(ctx, query)
	if err != nil {
		return err
	}
	ui.PrintSecretsTable(s.out, list.Secrets)
	return nil
}

// GetValue selects a secret and prints its value
func (s *Service) GetValue(ctx context.Context, query string, colored bool) error {
	sec, err := s.Select(ctx, query)
	if err != nil {
		return err
	}
	value, err := s.RenderValue(ctx, sec.ARN, colored)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, value)
	return nil
}

// GetARN selects a secret and prints its ARN
func (s *Service) GetARN(ctx context.Context, query string) error {
	sec, err := s.Select(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, sec.ARN)
	return nil
}

// Describe selects a secret and prints the full describe-secret document
func (s *Service) Describe(ctx context.Context, query string, colored bool) error {
	sec, err := s.Select(ctx, query)
	if err != nil {
		return err
	}

	out, err := s.runner.Run(ctx, cmdDescribe, "--secret-id", sec.ARN)
	if err != nil {
		return err
	}
	doc, err := ui.ParseJSON(out)
	if err != nil {
		return &awscli.ParseError{Subcommand: cmdDescribe, Err: err}
	}
	fmt.Fprintln(s.out, ui.FormatJSON(doc, colored))
	return nil
}

// Delete selects a secret and deletes it after an explicit confirmation
func (s *Service) Delete(ctx context.Context, query string) error {
	sec, err := s.Select(ctx, query)
	if err != nil {
		return err
	}

	ok, err := s.confirmer.Confirm(fmt.Sprintf("Are you sure you want to delete secret '%s'", sec.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.err, "Aborting...")
		return nil
	}

	fmt.Fprintf(s.err, "Deleting '%s'\n", sec.Name)
	if _, err := s.runner.Run(ctx, cmdDelete, "--secret-id", sec.ARN); err != nil {
		return err
	}
	return nil
}
