package catalog

import "github.com/swaupd/OsBlogApp/internal/models"

var operatingSystems = []models.OperatingSystem{
	{
		ID:        1,
		Name:      "Windows",
		Slug:      "windows",
		ShortDesc: "Microsoft's flagship operating system for personal computers.",
		Image:     "assets/windows-image.jpg",
		FullDesc: "Windows is a series of operating systems developed by Microsoft. First released in 1985, " +
			"Windows has become the most widely used desktop operating system worldwide. It features a graphical " +
			"user interface (GUI), virtual memory management, multitasking, and support for numerous peripherals. " +
			"Notable versions include Windows 95, which introduced the Start menu and taskbar; Windows XP, known for " +
			"its stability; and Windows 10, which aimed to unify the user experience across different device types. " +
			"Windows 11, the latest major release, launched in 2021 with a centered Start menu and improved virtual " +
			"desktop support.",
		History: "Windows began as a graphical shell for MS-DOS. Windows 1.0 was released in 1985, followed by " +
			"Windows 2.0 in 1987. Windows 3.0 and 3.1 gained significant popularity in the early 1990s. The release " +
			"of Windows 95 marked a significant advancement with its integrated GUI and improved multitasking. " +
			"Windows 98, Me, 2000, and XP followed, with XP becoming one of the most successful versions. Windows " +
			"Vista faced criticism, but Windows 7 was well-received. Windows 8 introduced a touch-friendly interface, " +
			"while Windows 10 returned to a more traditional desktop experience with additional features. Windows 11 " +
			"was released in 2021 with a refreshed design and enhanced productivity features.",
		Features: "Modern Windows features include:\n" +
			"- The Windows Shell, featuring the Start menu, taskbar, and file explorer\n" +
			"- Windows Security (formerly Windows Defender) for protection against malware\n" +
			"- DirectX for gaming and multimedia\n" +
			"- Microsoft Store for downloading apps\n" +
			"- Virtual desktops for organization\n" +
			"- Cortana virtual assistant\n" +
			"- Microsoft Edge web browser\n" +
			"- Integration with Microsoft 365 services\n" +
			"- Windows Subsystem for Linux (WSL) for running Linux applications\n" +
			"- Support for a wide range of hardware and peripherals",
	},
	{
		ID:        2,
		Name:      "macOS",
		Slug:      "macos",
		ShortDesc: "Apple's operating system for Mac computers, known for sleek design and integration.",
		Image:     "assets/macos-image.png",
		FullDesc: "macOS (formerly OS X) is Apple's operating system for Macintosh computers. Known for its " +
			"intuitive interface, stability, and seamless integration with other Apple devices, macOS is built on a " +
			"Unix foundation, providing advanced security features and robust performance. The system is designed " +
			"around a philosophy of simplicity and user experience, featuring the Dock for application access, " +
			"Spotlight for searching, and Mission Control for window management. Apple releases annual updates to " +
			"macOS, each named after California landmarks until 2016, and now using version numbers alongside the " +
			"macOS name.",
		History: "macOS evolved from NeXTSTEP, an operating system developed by NeXT, a company founded by Steve " +
			"Jobs after he left Apple in 1985. When Apple acquired NeXT in 1997, they began developing Mac OS X " +
			"based on NeXTSTEP. The first public beta was released in 2000, and Mac OS X 10.0 (Cheetah) officially " +
			"launched in 2001. Subsequent versions were named after big cats until OS X 10.9 (Mavericks), when Apple " +
			"switched to California landmarks. In 2016, Apple rebranded OS X as macOS to align with their other " +
			"operating systems (iOS, watchOS, tvOS). Recent versions include macOS Monterey, macOS Ventura, and " +
			"macOS Sonoma.",
		Features: "Key macOS features include:\n" +
			"- Unix-based foundation, providing stability and security\n" +
			"- Intuitive user interface with the Dock, Menu Bar, and Mission Control\n" +
			"- Time Machine for automated backups\n" +
			"- Spotlight for system-wide searching\n" +
			"- Continuity features for integration with iOS devices\n" +
			"- iCloud integration for file sharing and syncing\n" +
			"- Terminal for command-line operations\n" +
			"- Gatekeeper for app security\n" +
			"- Built-in apps: Safari, Mail, Photos, Messages, Maps, etc.\n" +
			"- Apple Silicon support, allowing for running iOS/iPadOS apps",
	},
	{
		ID:        3,
		Name:      "Linux",
		Slug:      "linux",
		ShortDesc: "Open-source operating system based on Unix, known for flexibility and stability.",
		Image:     "assets/linux.png",
		FullDesc: "Linux is a family of open-source Unix-like operating systems based on the Linux kernel, first " +
			"released by Linus Torvalds in 1991. Unlike proprietary operating systems, Linux is developed " +
			"collaboratively worldwide, with its source code freely available for modification and distribution. " +
			"Linux powers a vast range of devices, from embedded systems and smartphones (Android) to supercomputers " +
			"and web servers. It's known for its stability, security, flexibility, and efficiency. Linux is " +
			"distributed in various \"distributions\" or \"distros\" that package the kernel with different software " +
			"selections, default configurations, and philosophies.",
		History: "Linux began in 1991 when Finnish student Linus Torvalds started developing a free kernel for his " +
			"386 PC. He posted about his project on a newsgroup, which attracted developers worldwide who began " +
			"contributing to the code. The kernel was released under the GNU General Public License, making it free " +
			"software. Over time, the kernel was combined with GNU tools and other software to create complete " +
			"operating systems (distributions). Early distributions included Slackware and Debian in 1993, followed " +
			"by Red Hat, SUSE, and others. Ubuntu, launched in 2004, helped make Linux more accessible to average " +
			"users. Today, Linux powers most of the internet's infrastructure, Android devices, and is increasingly " +
			"adopted in enterprise environments.",
		Features: "Key Linux features include:\n" +
			"- Open-source code that anyone can view, modify, and distribute\n" +
			"- High stability and security with frequent updates\n" +
			"- Extensive hardware support and efficiency on older hardware\n" +
			"- Highly customizable interface through various desktop environments (GNOME, KDE, Xfce, etc.)\n" +
			"- Package management systems for easy software installation and updates\n" +
			"- Command-line interface providing powerful system control\n" +
			"- No mandatory licensing costs\n" +
			"- Vibrant community support\n" +
			"- Strong networking capabilities\n" +
			"- Multi-user design with robust permission systems",
	},
}

var products = []models.Product{
	{
		ID:          1,
		Name:        "Windows 11 Pro License",
		Price:       199.99,
		Image:       "assets/windows-image.jpg",
		Description: "Official Windows 11 Pro license key for one PC.",
	},
	{
		ID:          2,
		Name:        "macOS Extended Support",
		Price:       99.99,
		Image:       "assets/macos-image.png",
		Description: "Extended support and services for your Mac.",
	},
	{
		ID:          3,
		Name:        "Linux Administration Course",
		Price:       149.99,
		Image:       "assets/linux.png",
		Description: "Comprehensive Linux administration course with certification.",
	},
	{
		ID:          4,
		Name:        "Multi-OS USB Boot Drive",
		Price:       39.99,
		Image:       "assets/usb.png",
		Description: "32GB USB drive pre-configured for booting multiple operating systems.",
	},
	{
		ID:          5,
		Name:        "OS Backup Software",
		Price:       59.99,
		Image:       "assets/backup.png",
		Description: "Reliable backup software compatible with all major operating systems.",
	},
}
