package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/heathj/uisim/dom"
	"github.com/heathj/uisim/simulate"
)

func typesCmd(v *viper.Viper) *cobra.Command {
	var category string
	var cmd = &cobra.Command{
		Use:   "types",
		Short: "List event types per category",
		Long:  `List the event types each category recognizes on the configured platform`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := platform(v)
			if err != nil {
				return err
			}
			tables := simulate.TablesFor(p)

			out := yaml.Node{Kind: yaml.MappingNode}
			for _, c := range simulate.Categories() {
				if category != "" && c.String() != category {
					continue
				}
				key := yaml.Node{Kind: yaml.ScalarNode, Value: c.String()}
				list := yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
				for _, t := range tables.Types(c) {
					list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: t})
				}
				out.Content = append(out.Content, &key, &list)
			}
			if len(out.Content) == 0 {
				return errors.Errorf("unknown category %q", category)
			}
			return writeYAML(cmd.OutOrStdout(), &out)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list this category")

	return cmd
}

func buildCmd(v *viper.Viper) *cobra.Command {
	var opts []string
	var cmd = &cobra.Command{
		Use:   "build [type]",
		Short: "Build an event without firing it",
		Long:  `Build the event a browser would construct for the type and print its fields`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(v)
			if err != nil {
				return err
			}
			o, err := parseOptions(s.doc, opts)
			if err != nil {
				return err
			}
			evt, err := s.sim.Build(args[0], o)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), describe(evt))
		},
	}
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "event option as key=value; values are YAML and #id names an element")

	return cmd
}

func fireCmd(v *viper.Viper) *cobra.Command {
	var (
		opts   []string
		cancel bool
	)
	var cmd = &cobra.Command{
		Use:   "fire [type] [element-id]",
		Short: "Fire an event at an element",
		Long:  `Fire an event at the element with the given id and print how it propagated`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(v)
			if err != nil {
				return err
			}
			o, err := parseOptions(s.doc, opts)
			if err != nil {
				return err
			}
			target := s.doc.GetElementByID(args[1])
			if target == nil {
				return errors.Wrapf(simulate.ErrNoTarget, "no element with id %q", args[1])
			}

			tr := traceFrom(target, args[0], cancel)
			if err := s.sim.Fire(args[0], target, o); err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), tr.report())
		},
	}
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "event option as key=value; values are YAML and #id names an element")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "call preventDefault at the target")

	return cmd
}

func fireAtCmd(v *viper.Viper) *cobra.Command {
	var (
		opts   []string
		cancel bool
	)
	var cmd = &cobra.Command{
		Use:   "fire-at [type] [x] [y]",
		Short: "Fire an event at a point",
		Long:  `Fire an event at the element under the client point and print how it propagated`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(err, "x")
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Wrap(err, "y")
			}
			s, err := newSession(v)
			if err != nil {
				return err
			}
			o, err := parseOptions(s.doc, opts)
			if err != nil {
				return err
			}

			// Listeners go on the hit element's ancestors; FireAt hit-tests the same document.
			var tr *trace
			if target := s.doc.ElementFromPoint(x, y); target != nil {
				tr = traceFrom(target, args[0], cancel)
			}
			if err := s.sim.FireAt(args[0], x, y, o); err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), tr.report())
		},
	}
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "event option as key=value; values are YAML and #id names an element")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "call preventDefault at the target")

	return cmd
}

func treeCmd(v *viper.Viper) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "tree",
		Short: "Print the scene's element tree",
		Long:  `Print the element tree of the configured scene with each element's box`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadScene(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.Tree())
			return err
		},
	}

	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode")
	}
	return enc.Close()
}

// trace records the propagation of one event type through a target's
// ancestors.
type trace struct {
	target *dom.Node
	steps  []string
	last   dom.AnyEvent
}

func traceFrom(target *dom.Node, eventType string, cancel bool) *trace {
	tr := &trace{target: target}
	record := func(evt dom.AnyEvent) {
		e := evt.AsEvent()
		tr.steps = append(tr.steps, e.EventPhase().String()+" "+e.CurrentTarget().String())
		tr.last = evt
	}
	for n := target; n != nil; n = n.ParentNode {
		n.AddEventListener(eventType, record, dom.ListenerOptions{Capture: true})
		n.AddEventListener(eventType, record, dom.ListenerOptions{})
	}
	if cancel {
		target.AddEventListener(eventType, func(evt dom.AnyEvent) {
			evt.AsEvent().PreventDefault()
		}, dom.ListenerOptions{})
	}
	return tr
}

type traceReport struct {
	Target   string         `yaml:"target"`
	Canceled bool           `yaml:"canceled"`
	Path     []string       `yaml:"path"`
	Event    map[string]any `yaml:"event"`
}

func (tr *trace) report() traceReport {
	if tr == nil || tr.last == nil {
		return traceReport{Path: []string{}}
	}
	return traceReport{
		Target:   tr.target.String(),
		Canceled: tr.last.AsEvent().DefaultPrevented(),
		Path:     tr.steps,
		Event:    describe(tr.last),
	}
}
