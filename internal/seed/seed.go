// Package seed holds the built-in content used to populate an empty store on
// first read. Edits made through the admin panel are persisted and take
// precedence; the seed is only written once.
package seed

import "github.com/omegapc/omegacms/internal/models"

// Company returns the default company profile.
func Company() models.CompanyInfo {
	return models.CompanyInfo{
		Name:        "OMEGA",
		FullName:    "OMEGA for Petroleum & Construction Services",
		Slogan:      "Always deliver more than expected",
		Established: 2019,
		Location:    "Cairo, Egypt",
		Phone:       "01121001152",
		Email:       "Info@omega-pc.com",
		Website:     "https://www.omega-pc.com",
		WhatsApp:    "https://wa.me/201121001152",
		Address:     "Shebin Hathout Tower, next to Al-Ghatmi Mall, in front of Shebin Al-Koum Preparatory School, Cairo, Egypt",
		Mission:     "We are committed to moving forward as a unified company with strong alliances and dedicated employees. Our mission is to build on our strengths and continuously enhance our competitive edge, aiming to maintain a leading position in our core sectors, create value in the short and long term, and serve the best interests of our customers.",
		Vision:      "We strive to deliver top-tier service with optimal cost efficiency through well-trained labor, value-added services, and innovations. We are expanding into specialized activities such as marine transportation and heavy equipment maintenance.",
	}
}

// Services returns the default service catalog.
func Services() []models.ServiceItem {
	return []models.ServiceItem{
		{
			ID:               "rope-access",
			Title:            "Rope Access Services",
			ShortDescription: "Smart. Safe. Efficient. Access for hard-to-reach places.",
			FullDescription:  "Maximum Safety: All operations follow strict safety protocols using dual-rope systems and certified technicians. Cost & Time Saving: Quick setup, minimal equipment, and faster execution compared to scaffolding. Ideal for industrial inspections, high-rise maintenance, and structural repairs.",
			IconName:         "Anchor",
			Features:         []string{"IRATA & SPRAT Certified", "Structural Repairs & Welding", "Cable & System Installations", "Offshore & Confined Space"},
			Image:            "image/rope access.jpg",
		},
		{
			ID:               "lifting-inspection",
			Title:            "Lifting Equipment Inspection",
			ShortDescription: "Reliable. Compliant. Safe. Comprehensive gear inspection.",
			FullDescription:  "We inspect Cranes (Overhead, Mobile, Tower), Chain blocks, Wire ropes, Shackles, and Hydraulic jacks. With OMEGA, you get safer lifting operations, certified & documented inspections, and fast response support.",
			IconName:         "Construction",
			Features:         []string{"LOLER Compliance", "Load Testing & Certification", "Wire Ropes & Webbing Slings", "Defect Reporting"},
			Image:            "image/LIFTING EQUIPMENT .jpg",
		},
		{
			ID:               "ndt",
			Title:            "Non-Destructive Testing (NDT)",
			ShortDescription: "Advanced diagnostics without damage.",
			FullDescription:  "Accurate Insight: From welds to pipelines. Zero Damage: We inspect without interfering. Certified Expertise: Level II and Level III inspectors certified under ASNT, ISO codes. Methods include UT, MT, PT, RT, and VT.",
			IconName:         "Scan",
			Features:         []string{"Ultrasonic Testing (UT)", "Magnetic Particle (MT)", "Radiographic Testing (RT)", "Dye Penetrant (PT)"},
			Image:            "image/ndt.jpg",
		},
		{
			ID:               "hull-gauging",
			Title:            "Hull Gauging",
			ShortDescription: "Accurate. Certified. Compliant marine measurements.",
			FullDescription:  "Precise Measurements using advanced ultrasonic tools. Class-Approved Procedures meeting ABS, DNV, BV requirements. We deliver clear reports with corrosion mapping and steel renewal advice.",
			IconName:         "Ship",
			Features:         []string{"Class-Approved Reports", "Corrosion Mapping", "Steel Renewal Advice", "Dry-docking Support"},
			Image:            "image/hull gauging.jpg",
		},
		{
			ID:               "sandblasting-painting",
			Title:            "Sandblasting & Painting",
			ShortDescription: "Industrial-grade surface preparation and coating.",
			FullDescription:  "We use abrasive blasting to strip rust and contaminants. We apply high-performance coatings meeting IMO, NORSOK, and ISO standards. Services include Epoxy, Polyurethane, and Zinc-rich paint systems.",
			IconName:         "Paintbrush",
			Features:         []string{"Surface Preparation", "High-Performance Coatings", "Dew Point Monitoring", "SSPC/NACE Compliance"},
			Image:            "image/Sandblasting .jpg",
		},
		{
			ID:               "scaffolding",
			Title:            "Scaffolding Solutions",
			ShortDescription: "Secure platforms for safe efficient construction.",
			FullDescription:  "Reliable scaffolding solutions essential for multi-story buildings and industrial structures. Our systems offer secure platforms for workers and support the movement of materials across the site.",
			IconName:         "Trestle",
			Features:         []string{"Secure Platforms", "Industrial Structures", "Safety Compliance", "Installation & Dismantling"},
			Image:            "image/scaffolding.jpg",
		},
		{
			ID:               "gamma-xray",
			Title:            "Gamma Ray & X-Ray",
			ShortDescription: "Radiographic Testing (RT) for hidden flaws.",
			FullDescription:  "Using advanced gamma and X-ray technology to detect subsurface discontinuities. Ideal for inspecting welds, identifying cracks, measuring wall thickness, and assessing castings.",
			IconName:         "Radiation",
			Features:         []string{"Weld Inspection", "Internal Flaw Detection", "Metallic & Non-metallic", "Porosity Assessment"},
			Image:            "image/Gamma Ray & X-Ray.jpg",
		},
		{
			ID:               "heat-treatment",
			Title:            "Heat Treatment Services",
			ShortDescription: "Modifying metal properties for durability.",
			FullDescription:  "Professional heat treatment to enhance hardness, strength, or ductility. Vital for improving component durability and structural integrity in various industrial applications.",
			IconName:         "Flame",
			Features:         []string{"Stress Relieving", "Hardness Enhancement", "Pre/Post Weld Treatment", "Controlled Heating"},
			Image:            "image/Heat Treatment Services.jpg",
		},
		{
			ID:               "pressure-testing",
			Title:            "Pressure Testing Services",
			ShortDescription: "Ensuring safe operating ranges for sealed systems.",
			FullDescription:  "We determine the safe operating range of pipelines and fuel tanks. This process ensures structural integrity and operational safety to prevent leaks and failures.",
			IconName:         "Gauge",
			Features:         []string{"Hydrostatic Testing", "Pipeline Integrity", "Leak Detection", "Safety Certification"},
			Image:            "image/Pressure .jpg",
		},
		{
			ID:               "api-inspection",
			Title:            "API Inspection",
			ShortDescription: "Drilling structures, tanks, and equipment monitoring.",
			FullDescription:  "Monitoring equipment during operation to detect poor performance. Visual inspections cover cracks, loose fittings, elongation, and corrosion. Helps prevent failure and ensure API standard compliance.",
			IconName:         "ClipboardCheck",
			Features:         []string{"Drill Pipe Inspection", "Tank Inspection", "Structural Checks", "API Standards"},
			Image:            "image/Api insp.jpg",
		},
		{
			ID:               "tubular-inspection",
			Title:            "Tubular & Piping Inspection",
			ShortDescription: "Complete inspection for tubular equipment.",
			FullDescription:  "Inspection for drill pipes and hardware, new or used. Carried out in line with client specifications to ensure safe and efficient drilling operations.",
			IconName:         "Cylinder",
			Features:         []string{"Drill Pipes", "Casing & Tubing", "Hardware Check", "Operational Safety"},
			Image:            "image/Tubular .jpg",
		},
		{
			ID:               "tank-solutions",
			Title:            "Tank Solutions",
			ShortDescription: "Inspection, cleaning, and calibration.",
			FullDescription:  "Spatial inspections to detect tank tilt, differential settlement, and deformation. We also offer manufacturing, installation, maintenance, and repair to prevent critical failures.",
			IconName:         "Container",
			Features:         []string{"Calibration", "Sludge Cleaning", "Deformation Check", "Maintenance & Repair"},
			Image:            "image/Tank Solutions.jpg",
		},
	}
}

// Certificates returns the demo inspection certificates.
func Certificates() []models.InspectionCertificate {
	return []models.InspectionCertificate{
		{
			ID:             "C-001",
			EquipmentName:  "Overhead Crane 50T",
			SerialNumber:   "CR-2023-X99",
			InspectionDate: "2023-10-15",
			ExpiryDate:     "2024-10-15",
			Status:         models.CertStatusValid,
			PDFURL:         "#",
		},
		{
			ID:             "C-002",
			EquipmentName:  "Wire Rope Sling Set",
			SerialNumber:   "WS-554-B",
			InspectionDate: "2023-05-20",
			ExpiryDate:     "2024-05-20",
			Status:         models.CertStatusExpiring,
			PDFURL:         "#",
		},
		{
			ID:             "C-003",
			EquipmentName:  "Forklift 3T",
			SerialNumber:   "FL-09-A",
			InspectionDate: "2022-12-01",
			ExpiryDate:     "2023-12-01",
			Status:         models.CertStatusExpired,
			PDFURL:         "#",
		},
	}
}

// Projects returns the demo project updates.
func Projects() []models.ProjectUpdate {
	return []models.ProjectUpdate{
		{
			ID:          "P-101",
			Title:       "Offshore Rig Z-4 Maintenance",
			Progress:    75,
			Status:      "In Progress",
			LastUpdated: "2 hours ago",
			Stages: []models.ProjectStage{
				{Name: "Initial Survey", Status: models.StageCompleted, Date: "2023-10-10"},
				{Name: "Maintenance", Status: models.StageActive, Date: "2023-10-12"},
				{Name: "Testing", Status: models.StagePending},
			},
		},
		{
			ID:          "P-102",
			Title:       "Annual Lifting Gear Certification",
			Progress:    100,
			Status:      "Completed",
			LastUpdated: "1 day ago",
			Stages: []models.ProjectStage{
				{Name: "Inspection", Status: models.StageCompleted, Date: "2023-09-20"},
				{Name: "Load Testing", Status: models.StageCompleted, Date: "2023-09-21"},
				{Name: "Certification", Status: models.StageCompleted, Date: "2023-09-22"},
			},
		},
		{
			ID:          "P-103",
			Title:       "Pipeline NDT Survey Phase 1",
			Progress:    30,
			Status:      "Active",
			LastUpdated: "5 mins ago",
			Stages: []models.ProjectStage{
				{Name: "Mobilization", Status: models.StageCompleted, Date: "2023-10-15"},
				{Name: "Survey", Status: models.StageActive, Date: "2023-10-18"},
				{Name: "Report", Status: models.StagePending},
			},
		},
	}
}
