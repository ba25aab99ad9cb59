package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-nestable/nestable"
	"github.com/hasbyte1/go-nestable/reactive"
)

var errUsage = errors.New("usage")

// run reads commands from in until EOF, "quit" or ctx is done, and
// writes the results to out.
func run(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger, opts ...nestable.Option) error {
	store, err := NewStore(logger, opts...)
	if err != nil {
		return err
	}
	unsubscribe := store.List.Observe(func(changes []reactive.Change[*nestable.Item[*Nested]]) {
		for _, c := range changes {
			logger.Debug("change", "kind", c.Kind.String(), "index", c.Index, "added", len(c.Added), "removed", len(c.Removed))
		}
	})
	defer unsubscribe()

	fmt.Fprintln(out, store.List)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			return nil
		}
		if err := exec(store, fields[0], fields[1:], out); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func exec(s *Store, cmd string, args []string, out io.Writer) error {
	nums, err := ints(args)
	if err != nil {
		return err
	}
	switch cmd {
	case "add":
		if len(nums) != 1 {
			return fmt.Errorf("%w: add N", errUsage)
		}
		s.Add(nums[0])
	case "double":
		if len(nums) != 1 {
			return fmt.Errorf("%w: double I", errUsage)
		}
		if err := s.Double(nums[0]); err != nil {
			return err
		}
	case "set":
		if len(nums) != 2 {
			return fmt.Errorf("%w: set I N", errUsage)
		}
		it, ok := s.List.At(nums[0])
		if !ok {
			return fmt.Errorf("no counter at %d", nums[0])
		}
		if err := it.Update(map[string]any{"count": nums[1]}); err != nil {
			return err
		}
	case "remove":
		if len(nums) != 1 {
			return fmt.Errorf("%w: remove I", errUsage)
		}
		it, ok := s.List.At(nums[0])
		if !ok || !it.Remove() {
			return fmt.Errorf("no counter at %d", nums[0])
		}
	case "replace":
		displaced, err := s.List.ReplaceAll(nums)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "displaced %d\n", len(displaced))
	case "find":
		if len(nums) != 1 {
			return fmt.Errorf("%w: find ID", errUsage)
		}
		it, ok := s.List.ByID(nums[0])
		if !ok {
			fmt.Fprintln(out, "not found")
			return nil
		}
		fmt.Fprintf(out, "index %d count %d\n", s.List.IndexOf(it), it.Value.Count)
		return nil
	case "inc":
		s.Increment()
		fmt.Fprintf(out, "count %d\n", s.Count)
		return nil
	case "list":
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	fmt.Fprintln(out, s.List)
	return nil
}

func ints(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out[i] = n
	}
	return out, nil
}
