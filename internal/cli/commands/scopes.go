package commands

import (
	"MyWeddBlue/internal/config"
	"context"
	"fmt"
	"strings"
)

type clientsCmd struct{}

func (clientsCmd) Name() string        { return "clients" }
func (clientsCmd) Description() string { return "Показать приглашения клиентов" }
func (clientsCmd) Usage() string       { return "clients" }

func (clientsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := newGateway(cfg).Clients(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет клиентов")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- client:%s  slug=%s  name=%s\n", c.ID, c.Slug, c.Name)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type clientAddCmd struct{}

func (clientAddCmd) Name() string        { return "client-add" }
func (clientAddCmd) Description() string { return "Зарегистрировать приглашение клиента" }
func (clientAddCmd) Usage() string       { return "client-add <slug> [name...]" }

func (clientAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	c, err := newGateway(cfg).CreateClient(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Создан client:%s (%s)\n", c.ID, c.Slug)
	return nil
}

type templatesCmd struct{}

func (templatesCmd) Name() string        { return "templates" }
func (templatesCmd) Description() string { return "Показать шаблоны каталога" }
func (templatesCmd) Usage() string       { return "templates" }

func (templatesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	list, err := newGateway(cfg).Templates(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет шаблонов")
		return nil
	}
	for _, t := range list {
		fmt.Fprintf(Out, "- template:%s  name=%s\n", t.ID, t.Name)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

type templateAddCmd struct{}

func (templateAddCmd) Name() string        { return "template-add" }
func (templateAddCmd) Description() string { return "Создать шаблон каталога" }
func (templateAddCmd) Usage() string       { return "template-add <name...>" }

func (templateAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	t, err := newGateway(cfg).CreateTemplate(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Создан template:%s (%s)\n", t.ID, t.Name)
	return nil
}

func init() {
	RegisterCmd(clientsCmd{})
	RegisterCmd(clientAddCmd{})
	RegisterCmd(templatesCmd{})
	RegisterCmd(templateAddCmd{})
}
