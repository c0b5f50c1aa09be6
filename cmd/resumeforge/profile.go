package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumeforge/internal/profile"
	"github.com/jonathan/resumeforge/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit the stored career profile",
}

var (
	profilePath  string
	profileDBURL string
	profileIndex int

	// personal
	personalName     string
	personalEmail    string
	personalPhone    string
	personalLinkedIn string
	personalLocation string
	personalSummary  string

	// experience
	expCompany          string
	expRole             string
	expDuration         string
	expResponsibilities string
	expRespFile         string

	// project
	projName        string
	projDescription string
	projTech        string
	projGitHub      string

	// education
	eduDegree      string
	eduInstitution string
	eduYear        string
	eduGPA         string

	// certification
	certName   string
	certIssuer string
	certYear   string
)

// editProfile loads the profile, applies fn, and saves the result.
func editProfile(cmd *cobra.Command, fn func(p *types.Profile) (string, error)) error {
	e, err := setup()
	if err != nil {
		return err
	}
	ctx := context.Background()

	store, closeStore, err := e.profileStore(ctx, profileDBURL, profilePath)
	if err != nil {
		return err
	}
	defer closeStore()

	p, err := store.Load(ctx)
	if err != nil {
		return err
	}
	message, err := fn(p)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, p); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		ctx := context.Background()

		store, closeStore, err := e.profileStore(ctx, profileDBURL, profilePath)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := store.Load(ctx)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), p)
	},
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Set the personal details of the profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			p.Personal = types.Personal{
				Name:     personalName,
				Email:    personalEmail,
				Phone:    personalPhone,
				LinkedIn: personalLinkedIn,
				Location: personalLocation,
				Summary:  personalSummary,
			}
			if err := p.Validate(); err != nil {
				return "", fmt.Errorf("invalid personal details: %w", err)
			}
			return fmt.Sprintf("Profile initialized for %s", p.Personal.Name), nil
		})
	},
}

func experienceFromFlags() (types.Experience, error) {
	text := expResponsibilities
	if expRespFile != "" {
		data, err := os.ReadFile(expRespFile)
		if err != nil {
			return types.Experience{}, fmt.Errorf("failed to read responsibilities file: %w", err)
		}
		text = string(data)
	}
	return types.Experience{
		Company:          expCompany,
		Role:             expRole,
		Duration:         expDuration,
		Responsibilities: profile.ParseResponsibilities(text),
	}, nil
}

var profileAddExperienceCmd = &cobra.Command{
	Use:   "add-experience",
	Short: "Add an experience entry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		exp, err := experienceFromFlags()
		if err != nil {
			return err
		}
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			profile.AddExperience(p, exp)
			return fmt.Sprintf("Added experience at %s (%d bullets)", exp.Company, len(exp.Responsibilities)), nil
		})
	},
}

var profileUpdateExperienceCmd = &cobra.Command{
	Use:   "update-experience",
	Short: "Replace the experience entry at --index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		exp, err := experienceFromFlags()
		if err != nil {
			return err
		}
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			if err := profile.UpdateExperience(p, profileIndex, exp); err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated experience %d", profileIndex), nil
		})
	},
}

var profileDeleteExperienceCmd = &cobra.Command{
	Use:   "delete-experience",
	Short: "Delete the experience entry at --index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			if err := profile.DeleteExperience(p, profileIndex); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted experience %d", profileIndex), nil
		})
	},
}

func projectFromFlags() types.Project {
	return types.Project{
		Name:        projName,
		Description: projDescription,
		TechStack:   splitList(projTech),
		GitHub:      projGitHub,
	}
}

var profileAddProjectCmd = &cobra.Command{
	Use:   "add-project",
	Short: "Add a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		project := projectFromFlags()
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			profile.AddProject(p, project)
			return fmt.Sprintf("Added project %s", project.Name), nil
		})
	},
}

var profileUpdateProjectCmd = &cobra.Command{
	Use:   "update-project",
	Short: "Replace the project at --index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		project := projectFromFlags()
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			if err := profile.UpdateProject(p, profileIndex, project); err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated project %d", profileIndex), nil
		})
	},
}

var profileDeleteProjectCmd = &cobra.Command{
	Use:   "delete-project",
	Short: "Delete the project at --index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			if err := profile.DeleteProject(p, profileIndex); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted project %d", profileIndex), nil
		})
	},
}

var profileAddEducationCmd = &cobra.Command{
	Use:   "add-education",
	Short: "Add an education entry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			profile.AddEducation(p, types.Education{
				Degree:      eduDegree,
				Institution: eduInstitution,
				Year:        eduYear,
				GPA:         eduGPA,
			})
			return fmt.Sprintf("Added education %s", eduDegree), nil
		})
	},
}

var profileDeleteEducationCmd = &cobra.Command{
	Use:   "delete-education",
	Short: "Delete the education entry at --index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			if err := profile.DeleteEducation(p, profileIndex); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted education %d", profileIndex), nil
		})
	},
}

var profileAddCertificationCmd = &cobra.Command{
	Use:   "add-certification",
	Short: "Add a certification",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			profile.AddCertification(p, types.Certification{Name: certName, Issuer: certIssuer, Year: certYear})
			return fmt.Sprintf("Added certification %s", certName), nil
		})
	},
}

var profileDeleteCertificationCmd = &cobra.Command{
	Use:   "delete-certification",
	Short: "Delete the certification at --index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			if err := profile.DeleteCertification(p, profileIndex); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted certification %d", profileIndex), nil
		})
	},
}

var profileAddSkillsCmd = &cobra.Command{
	Use:   "add-skills SKILL...",
	Short: "Add technical skills not already in the profile",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editProfile(cmd, func(p *types.Profile) (string, error) {
			added := profile.AddSkills(p, args)
			return fmt.Sprintf("Added %d skills", added), nil
		})
	},
}

func init() {
	profileCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "Path to profile JSON (default from config)")
	profileCmd.PersistentFlags().StringVar(&profileDBURL, "db-url", "", "Use the profile stored in PostgreSQL instead of a file")

	profileInitCmd.Flags().StringVar(&personalName, "name", "", "Full name (required)")
	profileInitCmd.Flags().StringVar(&personalEmail, "email", "", "Email address (required)")
	profileInitCmd.Flags().StringVar(&personalPhone, "phone", "", "Phone number")
	profileInitCmd.Flags().StringVar(&personalLinkedIn, "linkedin", "", "LinkedIn URL")
	profileInitCmd.Flags().StringVar(&personalLocation, "location", "", "Location")
	profileInitCmd.Flags().StringVar(&personalSummary, "summary", "", "Professional summary")
	_ = profileInitCmd.MarkFlagRequired("name")
	_ = profileInitCmd.MarkFlagRequired("email")

	for _, c := range []*cobra.Command{profileAddExperienceCmd, profileUpdateExperienceCmd} {
		c.Flags().StringVar(&expCompany, "company", "", "Company name")
		c.Flags().StringVar(&expRole, "role", "", "Role title")
		c.Flags().StringVar(&expDuration, "duration", "", "Duration, e.g. 2021 - 2024")
		c.Flags().StringVar(&expResponsibilities, "responsibilities", "", "Responsibilities, one per line")
		c.Flags().StringVar(&expRespFile, "responsibilities-file", "", "File with one responsibility per line")
	}
	_ = profileAddExperienceCmd.MarkFlagRequired("company")

	for _, c := range []*cobra.Command{profileAddProjectCmd, profileUpdateProjectCmd} {
		c.Flags().StringVar(&projName, "name", "", "Project name")
		c.Flags().StringVar(&projDescription, "description", "", "Project description")
		c.Flags().StringVar(&projTech, "tech", "", "Comma-separated tech stack")
		c.Flags().StringVar(&projGitHub, "github", "", "Repository URL")
	}
	_ = profileAddProjectCmd.MarkFlagRequired("name")

	profileAddEducationCmd.Flags().StringVar(&eduDegree, "degree", "", "Degree (required)")
	profileAddEducationCmd.Flags().StringVar(&eduInstitution, "institution", "", "Institution")
	profileAddEducationCmd.Flags().StringVar(&eduYear, "year", "", "Graduation year")
	profileAddEducationCmd.Flags().StringVar(&eduGPA, "gpa", "", "GPA")
	_ = profileAddEducationCmd.MarkFlagRequired("degree")

	profileAddCertificationCmd.Flags().StringVar(&certName, "name", "", "Certification name (required)")
	profileAddCertificationCmd.Flags().StringVar(&certIssuer, "issuer", "", "Issuer")
	profileAddCertificationCmd.Flags().StringVar(&certYear, "year", "", "Year")
	_ = profileAddCertificationCmd.MarkFlagRequired("name")

	indexed := []*cobra.Command{
		profileUpdateExperienceCmd, profileDeleteExperienceCmd,
		profileUpdateProjectCmd, profileDeleteProjectCmd,
		profileDeleteEducationCmd, profileDeleteCertificationCmd,
	}
	for _, c := range indexed {
		c.Flags().IntVar(&profileIndex, "index", -1, "Zero-based entry index (required)")
		_ = c.MarkFlagRequired("index")
	}

	profileCmd.AddCommand(
		profileShowCmd,
		profileInitCmd,
		profileAddExperienceCmd,
		profileUpdateExperienceCmd,
		profileDeleteExperienceCmd,
		profileAddProjectCmd,
		profileUpdateProjectCmd,
		profileDeleteProjectCmd,
		profileAddEducationCmd,
		profileDeleteEducationCmd,
		profileAddCertificationCmd,
		profileDeleteCertificationCmd,
		profileAddSkillsCmd,
	)
	rootCmd.AddCommand(profileCmd)
}
