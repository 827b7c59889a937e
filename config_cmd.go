package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aschmelyun/tcut/config"
	"github.com/aschmelyun/tcut/constant"
	"github.com/aschmelyun/tcut/log"
	"github.com/aschmelyun/tcut/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fieldInfo is the JSON shape printed by `config info --json`.
type fieldInfo struct {
	Key         string `json:"key"`
	Env         string `json:"env"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description"`
}

func errUnknownKey(name string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("unknown key %s, did you mean %s?", name, closest)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// selectFields returns the named fields, or all of them when names is empty, sorted by key.
func selectFields(names []string) ([]config.Field, error) {
	fields := lo.Values(config.Default)

	if len(names) > 0 {
		fields = make([]config.Field, 0, len(names))
		for _, name := range names {
			field, ok := config.Default[name]
			if !ok {
				return nil, errUnknownKey(name)
			}
			fields = append(fields, field)
		}
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields, nil
}

func renderField(field config.Field) string {
	var b strings.Builder
	b.WriteString(BulletStyle.Render("┌") + TitleStyle.Render(field.Key) + "\n")
	for _, line := range strings.Split(field.Description, "\n") {
		b.WriteString(BulletStyle.Render("│") + DimTextStyle.Render(line) + "\n")
	}
	b.WriteString(BulletStyle.Render("├") + TextStyle.Render("Env: ") + DimTextStyle.Render(field.Env()) + "\n")
	b.WriteString(BulletStyle.Render("├") + TextStyle.Render("Default: ") + DimTextStyle.Render(fmt.Sprintf("%v", field.Value)) + "\n")
	b.WriteString(BulletStyle.Render("└") + TextStyle.Render("Value: ") + SuccessStyle.Render(fmt.Sprintf("%v", viper.Get(field.Key))))
	return b.String()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configWhereCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Configuration keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration settings and defaults",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields, their environment variables and current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		fields, err := selectFields(keys)
		if err != nil {
			return err
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(lo.Map(fields, func(f config.Field, _ int) fieldInfo {
				return fieldInfo{
					Key:         f.Key,
					Env:         f.Env(),
					Value:       viper.Get(f.Key),
					Default:     f.Value,
					Description: f.Description,
				}
			}))
		}

		rendered := lo.Map(fields, func(f config.Field, _ int) string {
			return renderField(f)
		})
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rendered, "\n\n"))
		return err
	},
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where the config file and logs are kept",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		configFile := filepath.Join(where.Config(), constant.App+".toml")
		fmt.Fprintln(out, BulletStyle.Render("├")+TextStyle.Render("Config: ")+DimTextStyle.Render(configFile))

		logs := "disabled, set logs.write to enable"
		if log.Enabled() {
			logs = where.Logs()
		}
		fmt.Fprintln(out, BulletStyle.Render("└")+TextStyle.Render("Logs: ")+DimTextStyle.Render(logs))
	},
}
