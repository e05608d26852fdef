package models

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	EnvironmentPrefix      = "environments/"
	InstancePrefix         = "instances/"
	DatabaseIDPrefix       = "databases/"
	ProjectPrefix          = "projects/"
	UserPrefix             = "users/"
	IdentityProviderPrefix = "idps/"
	PolicyIDPrefix         = "policies/"
	ReviewConfigPrefix     = "reviewConfigs/"
	ReleaseIDPrefix        = "releases/"
	VCSProviderPrefix      = "vcsProviders/"
	VCSConnectorIDPrefix   = "vcsConnectors/"
	AuditLogIDPrefix       = "auditLogs/"

	// AllInstances lists databases across every instance.
	AllInstances = "instances/-"
)

var resourceIDRe = regexp.MustCompile(`^[a-z]([a-z0-9-]{0,61}[a-z0-9])?$`)

// ValidateResourceID checks a user supplied resource id.
func ValidateResourceID(id string) error {
	if !resourceIDRe.MatchString(id) {
		return fmt.Errorf("invalid resource id %q, must match %s", id, resourceIDRe.String())
	}
	return nil
}

// ParseName splits name into the ids following each prefix, e.g.
// ParseName("instances/a/databases/b", InstancePrefix, DatabaseIDPrefix)
// returns ["a", "b"].
func ParseName(name string, prefixes ...string) ([]string, error) {
	rest := name
	ids := make([]string, 0, len(prefixes))
	for i, prefix := range prefixes {
		if !strings.HasPrefix(rest, prefix) {
			return nil, fmt.Errorf("invalid resource name %q, expected prefix %q", name, prefix)
		}
		rest = rest[len(prefix):]
		id := rest
		if i < len(prefixes)-1 {
			slash := strings.IndexByte(rest, '/')
			if slash < 0 {
				return nil, fmt.Errorf("invalid resource name %q", name)
			}
			id, rest = rest[:slash], rest[slash+1:]
		}
		if id == "" || strings.Contains(id, "/") {
			return nil, fmt.Errorf("invalid resource name %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func EnvironmentID(name string) (string, error) {
	ids, err := ParseName(name, EnvironmentPrefix)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

func InstanceID(name string) (string, error) {
	ids, err := ParseName(name, InstancePrefix)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

func ProjectID(name string) (string, error) {
	ids, err := ParseName(name, ProjectPrefix)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// InstanceDatabaseID returns the instance id and database name.
func InstanceDatabaseID(name string) (string, string, error) {
	ids, err := ParseName(name, InstancePrefix, DatabaseIDPrefix)
	if err != nil {
		return "", "", err
	}
	return ids[0], ids[1], nil
}

// UserEmail returns the email of users/{email}.
func UserEmail(name string) (string, error) {
	ids, err := ParseName(name, UserPrefix)
	if err != nil {
		return "", err
	}
	if !strings.Contains(ids[0], "@") {
		return "", fmt.Errorf("invalid user name %q", name)
	}
	return ids[0], nil
}

// ProjectReleaseID returns the project id and release id.
func ProjectReleaseID(name string) (string, string, error) {
	ids, err := ParseName(name, ProjectPrefix, ReleaseIDPrefix)
	if err != nil {
		return "", "", err
	}
	return ids[0], ids[1], nil
}

// ProjectVCSConnectorID returns the project id and connector id.
func ProjectVCSConnectorID(name string) (string, string, error) {
	ids, err := ParseName(name, ProjectPrefix, VCSConnectorIDPrefix)
	if err != nil {
		return "", "", err
	}
	return ids[0], ids[1], nil
}

func FormatUser(email string) string     { return UserPrefix + email }
func FormatEnvironment(id string) string { return EnvironmentPrefix + id }
func FormatInstance(id string) string    { return InstancePrefix + id }
func FormatProject(id string) string     { return ProjectPrefix + id }
func FormatDatabase(instance, db string) string {
	return InstancePrefix + instance + "/" + DatabaseIDPrefix + db
}

// PolicyParent splits {resource}/policies/{policy} into the parent resource
// (empty for workspace policies) and the policy id.
func PolicyParent(name string) (string, string, error) {
	var parent, rest string
	if strings.HasPrefix(name, PolicyIDPrefix) {
		rest = name
	} else {
		i := strings.LastIndex(name, "/"+PolicyIDPrefix)
		if i < 0 {
			return "", "", fmt.Errorf("invalid policy name %q", name)
		}
		parent, rest = name[:i], name[i+1:]
		if err := ValidatePolicyParent(parent); err != nil {
			return "", "", err
		}
	}
	id := strings.TrimPrefix(rest, PolicyIDPrefix)
	if id == "" || strings.Contains(id, "/") {
		return "", "", fmt.Errorf("invalid policy name %q", name)
	}
	return parent, id, nil
}

// ValidatePolicyParent accepts the resources policies can be attached to.
func ValidatePolicyParent(parent string) error {
	if parent == "" {
		return nil
	}
	for _, prefixes := range [][]string{
		{EnvironmentPrefix},
		{ProjectPrefix},
		{InstancePrefix},
		{InstancePrefix, DatabaseIDPrefix},
	} {
		if _, err := ParseName(parent, prefixes...); err == nil {
			return nil
		}
	}
	return fmt.Errorf("invalid policy parent %q", parent)
}
