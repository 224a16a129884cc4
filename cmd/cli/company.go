package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botadmin/dto"
	"github.com/botadmin/services"
)

func newCompanyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage client companies",
	}
	cmd.AddCommand(
		newCompanyAddCmd(),
		newCompanyListCmd(),
		newCompanyShowCmd(),
		newCompanyEditCmd(),
		newCompanyDeleteCmd(),
		newCompanyAssignIndustryCmd(),
		newCompanyAssignNicheCmd(),
		newCompanyAssignProductCmd(),
		newCompanyAssignServiceCmd(),
	)
	return cmd
}

// resolveCompanyRef maps an id-or-name argument to a company detail
func resolveCompanyRef(ref string) (*dto.CompanyDetail, error) {
	company, err := services.NewCompanyService(db).Get(ref)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company %q not found", ref)
	}
	return company, nil
}

func newCompanyAddCmd() *cobra.Command {
	var req dto.CreateCompanyRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new company",
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := services.NewCompanyService(db).Create(req)
			if err != nil {
				return err
			}
			fmt.Printf("Company %q created (%s)\n", company.Name, company.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Company name")
	cmd.Flags().StringVar(&req.ContactName, "contact-name", "", "Contact name")
	cmd.Flags().StringVar(&req.ContactEmail, "contact-email", "", "Contact email")
	cmd.Flags().StringVar(&req.ContactPhone, "contact-phone", "", "Contact phone")
	cmd.Flags().StringVar(&req.Website, "website", "", "Website URL")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}

func newCompanyListCmd() *cobra.Command {
	var filter dto.CompanyFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := services.NewCompanyService(db).List(filter)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(companies))
			for _, c := range companies {
				rows = append(rows, []string{c.ID, c.Name, string(c.Status), dash(c.ContactEmail)})
			}
			printTable([]string{"ID", "NAME", "STATUS", "CONTACT"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Status, "status", "", "Filter by status (active, inactive, archived)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Search by name")
	return cmd
}

func newCompanyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a company with its assignments and projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}

			printField("ID", company.ID)
			printField("Name", company.Name)
			printField("Status", string(company.Status))
			printField("Contact", company.ContactName)
			printField("Email", company.ContactEmail)
			printField("Phone", company.ContactPhone)
			printField("Website", company.Website)
			printField("Notes", company.Notes)

			if len(company.Industries) > 0 {
				fmt.Println("\nIndustries:")
				for _, a := range company.Industries {
					fmt.Printf("  - %s\n", a.IndustryName)
				}
			}
			if len(company.Niches) > 0 {
				fmt.Println("\nNiches:")
				for _, a := range company.Niches {
					fmt.Printf("  - %s (%s)\n", a.NicheName, a.IndustryName)
				}
			}
			if len(company.Products) > 0 {
				fmt.Println("\nProducts:")
				for _, a := range company.Products {
					fmt.Printf("  - %s\n", a.ProductName)
				}
			}
			if len(company.Services) > 0 {
				fmt.Println("\nServices:")
				for _, a := range company.Services {
					fmt.Printf("  - %s\n", a.ServiceName)
				}
			}
			if len(company.Projects) > 0 {
				fmt.Println("\nProjects:")
				for _, p := range company.Projects {
					fmt.Printf("  - %s [%s] (%s)\n", p.Name, p.Status, p.ID)
				}
			}
			return nil
		},
	}
}

func newCompanyEditCmd() *cobra.Command {
	var name, contactName, contactEmail, contactPhone, website, notes, status string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a company (only provided flags change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}

			var req dto.UpdateCompanyRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("contact-name") {
				req.ContactName = &contactName
			}
			if cmd.Flags().Changed("contact-email") {
				req.ContactEmail = &contactEmail
			}
			if cmd.Flags().Changed("contact-phone") {
				req.ContactPhone = &contactPhone
			}
			if cmd.Flags().Changed("website") {
				req.Website = &website
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}

			updated, err := services.NewCompanyService(db).Update(company.ID, req)
			if err != nil {
				return err
			}
			fmt.Printf("Company %q updated\n", updated.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&contactName, "contact-name", "", "Contact name")
	cmd.Flags().StringVar(&contactEmail, "contact-email", "", "Contact email")
	cmd.Flags().StringVar(&contactPhone, "contact-phone", "", "Contact phone")
	cmd.Flags().StringVar(&website, "website", "", "Website URL")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&status, "status", "", "Status (active, inactive, archived)")
	return cmd
}

func newCompanyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}
			if err := services.NewCompanyService(db).Delete(company.ID); err != nil {
				return err
			}
			fmt.Printf("Company %q deleted\n", company.Name)
			return nil
		},
	}
}

func newCompanyAssignIndustryCmd() *cobra.Command {
	var req dto.AssignCatalogRequest
	cmd := &cobra.Command{
		Use:   "assign-industry <companyId>",
		Short: "Assign an industry to a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewCompanyService(db).AssignIndustry(company.ID, req); err != nil {
				return err
			}
			fmt.Printf("Industry assigned to %q\n", company.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Ref, "industry", "", "Industry ID or name")
	return cmd
}

func newCompanyAssignNicheCmd() *cobra.Command {
	var req dto.AssignCatalogRequest
	cmd := &cobra.Command{
		Use:   "assign-niche <companyId>",
		Short: "Assign a niche to a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewCompanyService(db).AssignNiche(company.ID, req); err != nil {
				return err
			}
			fmt.Printf("Niche assigned to %q\n", company.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Ref, "niche", "", "Niche ID or name")
	return cmd
}

func newCompanyAssignProductCmd() *cobra.Command {
	var req dto.AssignCatalogRequest
	cmd := &cobra.Command{
		Use:   "assign-product <companyId>",
		Short: "Assign a product to a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewCompanyService(db).AssignProduct(company.ID, req); err != nil {
				return err
			}
			fmt.Printf("Product assigned to %q\n", company.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Ref, "product", "", "Product ID or name")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}

func newCompanyAssignServiceCmd() *cobra.Command {
	var req dto.AssignCatalogRequest
	cmd := &cobra.Command{
		Use:   "assign-service <companyId>",
		Short: "Assign a service to a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := resolveCompanyRef(args[0])
			if err != nil {
				return err
			}
			if _, err := services.NewCompanyService(db).AssignService(company.ID, req); err != nil {
				return err
			}
			fmt.Printf("Service assigned to %q\n", company.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Ref, "service", "", "Service ID or name")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}
