package secrets

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/vietdv277/smf/internal/editor"
)

// Create opens an empty scratch file in the editor and creates a secret from
// it. If the editor removed the file the workflow aborts without a remote call.
func (s *Service) Create(ctx context.Context, name string, description *string) error {
	tf, err := editor.NewTempFile(".json")
	if err != nil {
		return err
	}
	defer tf.Close()

	if ok, err := s.runEditor(ctx, tf); !ok {
		return err
	}

	args := []string{"--name", name, "--secret-string", tf.URI()}
	if description != nil {
		args = append(args, "--description", *description)
	}
	if _, err := s.runner.Run(ctx, cmdCreate, args...); err != nil {
		return err
	}

	fmt.Fprintf(s.err, "Created secret %s\n", name)
	return nil
}

// Edit selects a secret and lets the user change its value, or its
// description when editDescription is set. Unchanged content is not sent.
func (s *Service) Edit(ctx context.Context, query string, editDescription bool) error {
	sec, err := s.Select(ctx, query)
	if err != nil {
		return err
	}

	field, flag, suffix := "Secret", "--secret-string", ".json"
	var original string
	if editDescription {
		field, flag, suffix = "Description", "--description", ".txt"
		original = sec.DescriptionOrEmpty()
	} else {
		original, err = s.RenderValue(ctx, sec.ARN, false)
		if err != nil {
			return err
		}
	}

	tf, err := editor.NewTempFile(suffix)
	if err != nil {
		return err
	}
	defer tf.Close()

	if err := tf.Write([]byte(original)); err != nil {
		return err
	}
	if ok, err := s.runEditor(ctx, tf); !ok {
		return err
	}
	updated, err := tf.Read()
	if err != nil {
		return err
	}
	if bytes.Equal(updated, []byte(original)) {
		fmt.Fprintf(s.err, "%s not changed. Aborting...\n", field)
		return nil
	}

	if _, err := s.runner.Run(ctx, cmdUpdate, "--secret-id", sec.ARN, flag, tf.URI()); err != nil {
		return err
	}

	if editDescription {
		fmt.Fprintf(s.err, "Updated secret description %s\n", sec.Name)
	} else {
		fmt.Fprintf(s.err, "Updated secret %s\n", sec.Name)
	}
	return nil
}

// runEditor edits tf and reports whether the workflow should continue. A failed
// editor exit or a removed file is an abort: it prints "Aborting..." and
// returns false with a nil error.
func (s *Service) runEditor(ctx context.Context, tf *editor.TempFile) (bool, error) {
	if err := s.editor.Edit(ctx, tf.Path()); err != nil {
		if !errors.Is(err, editor.ErrAborted) {
			return false, err
		}
		s.logger.Debug("%v", err)
		fmt.Fprintln(s.err, "Aborting...")
		return false, nil
	}

	if !tf.Exists() {
		fmt.Fprintln(s.err, "Aborting...")
		return false, nil
	}
	return true, nil
}
