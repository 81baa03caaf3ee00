// Package prompt implements the interactive operator dialog used to
// resolve missing or ambiguous categorization rules and to edit entry
// fields. All prompts are blocking, line-based exchanges on an
// injected reader/writer pair, so the dialog is fully scriptable in
// tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/bank"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/ledger"
	"github.com/shunichi-ikebuchi/ledgerize/pkg/rules"
)

// Resolver is the boundary contract the classifier uses to involve the
// operator. Every method blocks until the operator answers.
type Resolver interface {
	// ShowTransaction displays a transaction before classification so
	// the operator has context for the prompts that follow.
	ShowTransaction(txn bank.Transaction) error

	// ResolveAbsence handles a name no rule matched. It returns the
	// pattern for a newly created rule, or an empty pattern and an
	// all-empty rule if the operator declines to create one (the
	// transaction is then categorized ad hoc with no persistence).
	ResolveAbsence(name string) (pattern string, rule rules.Rule, err error)

	// ResolveAmbiguity handles a name matched by several rules. It
	// never picks a candidate: the operator is shown the conflict and
	// gets a non-persisting default rule, leaving the store to be
	// fixed by hand.
	ResolveAmbiguity(name string, candidates []rules.Entry) (rules.Rule, error)

	// ResolveField prompts for one editable field seeded with current.
	// Empty input accepts the seed. A differing answer additionally
	// asks whether to persist it as the pattern's new default; save
	// reports that choice.
	ResolveField(label, current string) (value string, save bool, err error)
}

// TerminalResolver is a line-based Resolver over an input reader and
// an output writer, normally stdin/stdout.
type TerminalResolver struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalResolver creates a TerminalResolver.
func NewTerminalResolver(in io.Reader, out io.Writer) *TerminalResolver {
	return &TerminalResolver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ShowTransaction displays the date, raw name and signed amount.
func (t *TerminalResolver) ShowTransaction(txn bank.Transaction) error {
	sign := ""
	if txn.AmountMinor < 0 {
		sign = "-"
	}
	_, err := fmt.Fprintf(t.out, "\n%s  %s  %s%s\n",
		txn.Date.Format("2006/01/02"),
		txn.Name,
		sign,
		ledger.FormatAmount(txn.AbsAmountMinor()),
	)
	return err
}

// ResolveAbsence informs the operator that no rule matched and offers
// to create one. The supplied pattern must match the transaction name
// itself; input failing that check is rejected and re-prompted. Empty
// input falls back to the literal-escaped name, which always matches.
func (t *TerminalResolver) ResolveAbsence(name string) (string, rules.Rule, error) {
	if _, err := fmt.Fprintf(t.out, "No rule matches %q.\n", name); err != nil {
		return "", rules.Rule{}, err
	}

	create, err := t.askYesNo("Create a rule for it?")
	if err != nil {
		return "", rules.Rule{}, err
	}
	if !create {
		return "", rules.Rule{}, nil
	}

	fallback := regexp.QuoteMeta(name)

	// Retry until the operator supplies a regex that matches the name,
	// or accepts the literal fallback with empty input. Bounded only
	// by operator cooperation.
	for {
		if _, err := fmt.Fprintf(t.out, "Pattern [%s]: ", fallback); err != nil {
			return "", rules.Rule{}, err
		}

		line, err := t.readLine()
		if err != nil {
			return "", rules.Rule{}, err
		}
		if line == "" {
			return fallback, rules.Rule{}, nil
		}

		re, err := regexp.Compile(line)
		if err != nil {
			if _, err := fmt.Fprintf(t.out, "Invalid pattern: %v\n", err); err != nil {
				return "", rules.Rule{}, err
			}
			continue
		}
		if !re.MatchString(name) {
			if _, err := fmt.Fprintf(t.out, "Pattern does not match %q, try again.\n", name); err != nil {
				return "", rules.Rule{}, err
			}
			continue
		}

		return line, rules.Rule{}, nil
	}
}

// ResolveAmbiguity lists the conflicting rules and degrades to a
// one-off default. The conflict is left in the rules file for the
// operator to fix by hand.
func (t *TerminalResolver) ResolveAmbiguity(name string, candidates []rules.Entry) (rules.Rule, error) {
	if _, err := fmt.Fprintf(t.out, "%d rules match %q:\n", len(candidates), name); err != nil {
		return rules.Rule{}, err
	}
	for _, c := range candidates {
		if _, err := fmt.Fprintf(t.out, "  %s\n", c.Pattern); err != nil {
			return rules.Rule{}, err
		}
	}
	if _, err := fmt.Fprintln(t.out, "Using one-off defaults; edit the rules file to fix the overlap."); err != nil {
		return rules.Rule{}, err
	}

	return rules.Rule{}, nil
}

// ResolveField prompts for one field value seeded with current.
func (t *TerminalResolver) ResolveField(label, current string) (string, bool, error) {
	if _, err := fmt.Fprintf(t.out, "%s [%s]: ", label, current); err != nil {
		return "", false, err
	}

	line, err := t.readLine()
	if err != nil {
		return "", false, err
	}
	if line == "" || line == current {
		return current, false, nil
	}

	save, err := t.askYesNo(fmt.Sprintf("Save %q as the default %s for this rule?", line, label))
	if err != nil {
		return "", false, err
	}

	return line, save, nil
}

// askYesNo asks a yes/no question. Unrecognized input is rejected and
// the question repeated; there is no silent fallback.
func (t *TerminalResolver) askYesNo(question string) (bool, error) {
	for {
		if _, err := fmt.Fprintf(t.out, "%s (y/n): ", question); err != nil {
			return false, err
		}

		line, err := t.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if _, err := fmt.Fprintln(t.out, "Please answer yes or no."); err != nil {
			return false, err
		}
	}
}

// readLine reads one operator line without its trailing newline.
func (t *TerminalResolver) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", fmt.Errorf("operator input closed")
		}
		return "", fmt.Errorf("failed to read operator input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
